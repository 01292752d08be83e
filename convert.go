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
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Supported bases.
const (
	MinBase = 2
	MaxBase = 36
)

// ValidBase reports whether base lies in [MinBase, MaxBase].
func ValidBase(base int) bool {
	return base >= MinBase && base <= MaxBase
}

// Convert rewrites the integer literal input, written in fromBase, as a literal in toBase.
//
// Input is trimmed of surrounding whitespace and matched case-insensitively, and
// may carry a single leading '+' or '-'. The result is upper case, has no leading
// zeros, and is signed only when negative. Zero is always "0".
//
// Errors wrap ErrBaseOutOfRange, ErrEmptyInput or ErrInvalidDigit; details are
// available through *BaseError and *DigitError.
func Convert(input string, fromBase, toBase int) (string, error) {
	if !ValidBase(fromBase) {
		return "", &BaseError{Param: "from base", Value: fromBase, Err: ErrBaseOutOfRange}
	}
	if !ValidBase(toBase) {
		return "", &BaseError{Param: "to base", Value: toBase, Err: ErrBaseOutOfRange}
	}
	return convert(input, fromBase, toBase)
}

// ConvertValue is Convert for untyped arguments. Bases must hold an integer
// value (any integer kind, or a float with no fractional part), else the error
// wraps ErrInvalidBase. Input is turned into text first: strings and byte slices
// are used as-is, fmt.Stringer values through String, floats in their shortest
// decimal form, and everything else through fmt.Sprint.
func ConvertValue(input any, fromBase, toBase any) (string, error) {
	from, err := integer("from base", fromBase)
	if err != nil {
		return "", err
	}
	to, err := integer("to base", toBase)
	if err != nil {
		return "", err
	}
	if !ValidBase(from) {
		return "", &BaseError{Param: "from base", Value: fromBase, Err: ErrBaseOutOfRange}
	}
	if !ValidBase(to) {
		return "", &BaseError{Param: "to base", Value: toBase, Err: ErrBaseOutOfRange}
	}
	return convert(text(input), from, to)
}

// Normalize returns the canonical form of a literal in base: upper case, no
// '+' sign, no leading zeros, and "0" for any zero.
func Normalize(input string, base int) (string, error) {
	return Convert(input, base, base)
}

// ParseBase parses the decimal text of a base, such as a command line flag.
// Text that is not an integer yields ErrInvalidBase; "16.0" is accepted as 16.
func ParseBase(s string) (int, error) {
	t := strings.TrimSpace(s)
	if n, err := strconv.Atoi(t); err == nil {
		if !ValidBase(n) {
			return 0, &BaseError{Param: "base", Value: s, Err: ErrBaseOutOfRange}
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &BaseError{Param: "base", Value: s, Err: ErrInvalidBase}
	}
	n, err := integer("base", f)
	if err != nil {
		return 0, &BaseError{Param: "base", Value: s, Err: ErrInvalidBase}
	}
	if !ValidBase(n) {
		return 0, &BaseError{Param: "base", Value: s, Err: ErrBaseOutOfRange}
	}
	return n, nil
}

func convert(input string, fromBase, toBase int) (string, error) {
	neg, digits, err := parseLiteral(input, fromBase)
	if err != nil {
		return "", err
	}

	x, err := Num(digits, fromBase)
	if err != nil {
		return "", err
	}
	if x.Sign() == 0 {
		return "0", nil
	}

	out, err := Str(&x, toBase)
	if err != nil {
		return "", err
	}
	s, err := std.Decode(out)
	if err != nil {
		return "", err
	}
	if neg {
		return "-" + s, nil
	}
	return s, nil
}

// parseLiteral splits off the sign and encodes the remaining characters as
// digit ordinals of base.
func parseLiteral(input string, base int) (neg bool, digits []uint16, err error) {
	s := strings.ToUpper(strings.TrimFunc(input, isTrimSpace))
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	}
	if s == "" {
		return false, nil, ErrEmptyInput
	}
	digits, err = std.Encode(s, base)
	if err != nil {
		return false, nil, err
	}
	return neg, digits, nil
}

func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// integer reports the integer value held by v. Values beyond the int32 range
// are clamped, which keeps them out of the base range.
func integer(param string, v any) (int, error) {
	var f float64
	switch b := v.(type) {
	case int:
		return b, nil
	case int8:
		return int(b), nil
	case int16:
		return int(b), nil
	case int32:
		return int(b), nil
	case int64:
		return clamp(float64(b)), nil
	case uint:
		return clamp(float64(b)), nil
	case uint8:
		return int(b), nil
	case uint16:
		return int(b), nil
	case uint32:
		return clamp(float64(b)), nil
	case uint64:
		return clamp(float64(b)), nil
	case float32:
		f = float64(b)
	case float64:
		f = b
	default:
		return 0, &BaseError{Param: param, Value: v, Err: ErrInvalidBase}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, &BaseError{Param: param, Value: v, Err: ErrInvalidBase}
	}
	return clamp(f), nil
}

func clamp(f float64) int {
	switch {
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
