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

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Symbol is a string of up to [LowerMaxLen] characters from the [Lower]
// alphabet, packed into a 128-bit value.
//
// The zero Symbol is the empty string. Symbols are comparable with ==, and
// two symbols are equal exactly when their strings are. The one exception is
// [FromRaw] of a value no string encodes to; the unmarshaling methods reject
// such values with [ErrMalformed].
type Symbol struct {
	raw uint128.Uint128
}

// New validates s and returns it as a symbol.
//
// Returns an [*Error] wrapping [ErrTooLong] or [ErrInvalidChar] if s is
// longer than [LowerMaxLen] or contains a character outside of [Lower].
func New(s string) (Symbol, error) {
	raw, err := lowerTable.Encode(s)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{raw}, nil
}

// Must is like [New], but panics if s is not a valid symbol.
//
// It is intended for literals; the symbolcheck analyzer verifies constant
// arguments to Must ahead of time.
func Must(s string) Symbol {
	sym, err := New(s)
	if err != nil {
		panic(err)
	}
	return sym
}

// FromRaw wraps a value previously returned by [Symbol.Raw].
//
// Values that did not come from a symbol still produce a Symbol, which
// decodes to the characters preceding the value's first zero digit.
func FromRaw(raw uint128.Uint128) Symbol {
	return Symbol{raw}
}

// Raw returns the packed value of this symbol.
func (s Symbol) Raw() uint128.Uint128 {
	return s.raw
}

// String returns the string this symbol was built from.
func (s Symbol) String() string {
	if s.raw.IsZero() {
		return ""
	}
	return lowerTable.Decode(s.raw)
}

// Len returns the length of this symbol's string.
func (s Symbol) Len() int {
	if s.raw.IsZero() {
		return 0
	}
	return lowerTable.Len(s.raw)
}

// IsEmpty returns whether this is the empty symbol.
func (s Symbol) IsEmpty() bool {
	return s.raw.IsZero()
}

// Compare returns -1, 0, or 1 depending on whether s orders before, equal
// to, or after t. See the package documentation for the ordering.
func (s Symbol) Compare(t Symbol) int {
	return s.raw.Cmp(t.raw)
}

// GoString implements [fmt.GoStringer].
func (s Symbol) GoString() string {
	return fmt.Sprintf("symbol.Must(%q)", s.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Symbol) UnmarshalText(text []byte) error {
	sym, err := New(string(text))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
//
// The encoding is the raw value as 16 big-endian bytes, so that byte-wise
// comparison agrees with [Symbol.Compare].
func (s Symbol) MarshalBinary() ([]byte, error) {
	return marshalRaw(s.raw), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
//
// Returns an [*Error] wrapping [ErrMalformed] if data is not the encoding of
// any symbol.
func (s *Symbol) UnmarshalBinary(data []byte) error {
	raw, err := unmarshalRaw(lowerTable, data)
	if err != nil {
		return err
	}
	*s = Symbol{raw}
	return nil
}
