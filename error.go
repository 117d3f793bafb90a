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

package symbol

import "buf.build/go/symbol/internal/codec"

// Error is the error returned when a string cannot be made into a symbol, or
// when an alphabet is malformed.
//
// Use [errors.Is] with the sentinel errors below to tell kinds apart, and
// [errors.As] to recover the offending character and its position.
type Error = codec.Error

var (
	// ErrTooLong is returned for strings longer than the alphabet's maximum
	// length.
	ErrTooLong = codec.ErrTooLong

	// ErrInvalidChar is returned for strings containing a character outside
	// of the alphabet.
	ErrInvalidChar = codec.ErrInvalidChar

	// ErrEmptyAlphabet is returned when defining an alphabet with no
	// characters.
	ErrEmptyAlphabet = codec.ErrEmptyAlphabet

	// ErrDuplicateChar is returned when defining an alphabet that repeats a
	// character.
	ErrDuplicateChar = codec.ErrDuplicateChar

	// ErrBadMaxLen is returned when an alphabet asks for a maximum length
	// larger than its size allows.
	ErrBadMaxLen = codec.ErrBadMaxLen

	// ErrMalformed is returned when decoding a binary or wire value that no
	// string encodes to.
	ErrMalformed = codec.ErrMalformed
)
