/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package baseconv

import (
	"math/big"
)

// Num constructs a big.Int from an array of uint16, where each element represents
// one digit in the given radix.  The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
// An empty array is zero.
func Num(s []uint16, radix int) (big.Int, error) {
	var bigRadix, bv, x big.Int
	if !ValidBase(radix) {
		return x, &BaseError{Param: "radix", Value: radix, Err: ErrBaseOutOfRange}
	}

	maxv := uint16(radix - 1)
	bigRadix.SetInt64(int64(radix))
	for i, v := range s {
		if v > maxv {
			var c rune = '?'
			if int(v) < len(Digits) {
				c = rune(Digits[v])
			}
			return x, &DigitError{Char: c, Pos: i, Base: radix}
		}
		bv.SetUint64(uint64(v))
		x.Mul(&x, &bigRadix)
		x.Add(&x, &bv)
	}
	return x, nil
}

// Str returns the digits of the magnitude of x in the specified radix.
// The array is arranged with the most significant digit in element 0 and
// has no leading zeros; zero is the single digit 0.
func Str(x *big.Int, radix int) ([]uint16, error) {
	if !ValidBase(radix) {
		return nil, &BaseError{Param: "radix", Value: radix, Err: ErrBaseOutOfRange}
	}
	var bigRadix, mod, v big.Int
	v.Abs(x)
	if v.Sign() == 0 {
		return []uint16{0}, nil
	}

	bigRadix.SetInt64(int64(radix))
	// least significant digit first, reversed below
	r := make([]uint16, 0, v.BitLen()/bitsPerDigit(radix)+1)
	for v.Sign() != 0 {
		v.QuoRem(&v, &bigRadix, &mod)
		r = append(r, uint16(mod.Uint64()))
	}
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return r, nil
}

// bitsPerDigit is floor(log2(radix)), at least 1.
func bitsPerDigit(radix int) int {
	n := 0
	for radix > 1 {
		radix >>= 1
		n++
	}
	return n
}
