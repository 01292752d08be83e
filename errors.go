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
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidBase    = errors.New("base must be an integer")
	ErrBaseOutOfRange = errors.New("base must be between 2 and 36, inclusive")
	ErrEmptyInput     = errors.New("empty input: no digits after sign")
	ErrInvalidDigit   = errors.New("invalid digit")
)

// A BaseError reports a rejected source or target base.
// Err is either ErrInvalidBase or ErrBaseOutOfRange.
type BaseError struct {
	Param string
	Value any
	Err   error
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Param, e.Value, e.Err)
}

func (e *BaseError) Unwrap() error { return e.Err }

// A DigitError reports a character that is not a digit of Base.
// Pos counts characters of the magnitude literal, after the sign.
type DigitError struct {
	Char rune
	Pos  int
	Base int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d for base %d", e.Char, e.Pos, e.Base)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }
