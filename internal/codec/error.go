// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"errors"
	"fmt"
)

// Code is the kind of an [Error].
type Code int

const (
	CodeOK Code = iota

	// Produced when validating a string.
	CodeTooLong
	CodeInvalidChar

	// Produced when defining an alphabet.
	CodeEmptyAlphabet
	CodeDuplicateChar
	CodeBadMaxLen

	// Produced when decoding an untrusted value.
	CodeMalformed
)

var (
	ErrTooLong       = errors.New("string too long")
	ErrInvalidChar   = errors.New("invalid character")
	ErrEmptyAlphabet = errors.New("empty alphabet")
	ErrDuplicateChar = errors.New("duplicate character in alphabet")
	ErrBadMaxLen     = errors.New("maximum length out of range")
	ErrMalformed     = errors.New("malformed value")
)

var errs = [...]error{
	CodeOK:            nil,
	CodeTooLong:       ErrTooLong,
	CodeInvalidChar:   ErrInvalidChar,
	CodeEmptyAlphabet: ErrEmptyAlphabet,
	CodeDuplicateChar: ErrDuplicateChar,
	CodeBadMaxLen:     ErrBadMaxLen,
	CodeMalformed:     ErrMalformed,
}

// Error is an error produced while validating a string or defining an
// alphabet.
type Error struct {
	Code Code

	Char rune // The offending character, for CodeInvalidChar and CodeDuplicateChar.
	Pos  int  // Its position in runes.

	Len int // The length of the string, or the requested maximum length.
	Max int // The maximum length allowed.
}

// Unwrap implements error unwrapping viz [errors.Unwrap].
func (e *Error) Unwrap() error {
	return errs[e.Code]
}

// Error implements [error].
func (e *Error) Error() string {
	switch e.Code {
	case CodeTooLong:
		return fmt.Sprintf("symbol: %v: length %d exceeds maximum of %d", e.Unwrap(), e.Len, e.Max)
	case CodeInvalidChar, CodeDuplicateChar:
		return fmt.Sprintf("symbol: %v %q at position %d", e.Unwrap(), e.Char, e.Pos)
	case CodeBadMaxLen:
		return fmt.Sprintf("symbol: %v: %d not in [1, %d]", e.Unwrap(), e.Len, e.Max)
	default:
		return fmt.Sprintf("symbol: %v", e.Unwrap())
	}
}
