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
	"errors"
	"fmt"
	"reflect"

	"lukechampine.com/uint128"

	"buf.build/go/symbol/internal/codec"
)

// Custom is a symbol over a user-defined [Alphabet].
//
// Symbols of different alphabets are different types, so they cannot be
// compared or assigned to one another. Otherwise, Custom behaves exactly like
// [Symbol].
//
// Methods that decode a Custom panic if A is not a well-formed alphabet;
// use [MustDefine] to catch this during initialization.
type Custom[A Alphabet] struct {
	raw uint128.Uint128
}

// NewCustom validates s against alphabet A and returns it as a symbol.
//
// Returns an [*Error] wrapping [ErrTooLong] or [ErrInvalidChar] if s does not
// fit, or the error from [Define] if A is malformed.
func NewCustom[A Alphabet](s string) (Custom[A], error) {
	t, err := tableOf[A]()
	if err != nil {
		return Custom[A]{}, err
	}

	raw, err := t.Encode(s)
	if err != nil {
		return Custom[A]{}, err
	}
	return Custom[A]{raw}, nil
}

// MustCustom is like [NewCustom], but panics on error.
func MustCustom[A Alphabet](s string) Custom[A] {
	sym, err := NewCustom[A](s)
	if err != nil {
		panic(err)
	}
	return sym
}

// CustomFromRaw wraps a value previously returned by [Custom.Raw].
func CustomFromRaw[A Alphabet](raw uint128.Uint128) Custom[A] {
	return Custom[A]{raw}
}

// Raw returns the packed value of this symbol.
func (s Custom[A]) Raw() uint128.Uint128 {
	return s.raw
}

// String returns the string this symbol was built from.
func (s Custom[A]) String() string {
	if s.raw.IsZero() {
		return ""
	}
	return mustTable[A]().Decode(s.raw)
}

// Len returns the length of this symbol's string.
func (s Custom[A]) Len() int {
	if s.raw.IsZero() {
		return 0
	}
	return mustTable[A]().Len(s.raw)
}

// IsEmpty returns whether this is the empty symbol.
func (s Custom[A]) IsEmpty() bool {
	return s.raw.IsZero()
}

// Compare returns -1, 0, or 1 depending on whether s orders before, equal
// to, or after t.
func (s Custom[A]) Compare(t Custom[A]) int {
	return s.raw.Cmp(t.raw)
}

// GoString implements [fmt.GoStringer].
func (s Custom[A]) GoString() string {
	return fmt.Sprintf("symbol.MustCustom[%v](%q)", reflect.TypeFor[A](), s.String())
}

// MarshalText implements [encoding.TextMarshaler].
func (s Custom[A]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Custom[A]) UnmarshalText(text []byte) error {
	sym, err := NewCustom[A](string(text))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler]. The format is the same
// as [Symbol.MarshalBinary].
func (s Custom[A]) MarshalBinary() ([]byte, error) {
	return marshalRaw(s.raw), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
//
// Returns an [*Error] wrapping [ErrMalformed] if data is not the encoding of
// any symbol over A.
func (s *Custom[A]) UnmarshalBinary(data []byte) error {
	t, err := tableOf[A]()
	if err != nil {
		return err
	}
	raw, err := unmarshalRaw(t, data)
	if err != nil {
		return err
	}
	*s = Custom[A]{raw}
	return nil
}

var errBinaryLen = errors.New("symbol: binary encoding must be 16 bytes")

func marshalRaw(raw uint128.Uint128) []byte {
	b := make([]byte, 16)
	raw.PutBytesBE(b)
	return b
}

func unmarshalRaw(t *codec.Table, data []byte) (uint128.Uint128, error) {
	if len(data) != 16 {
		return uint128.Zero, errBinaryLen
	}
	raw := uint128.FromBytesBE(data)
	return raw, checkRaw(t, raw)
}

// checkRaw rejects values from outside the program that no string encodes to,
// since they would compare unequal to the symbol they print as.
func checkRaw(t *codec.Table, raw uint128.Uint128) error {
	if !t.Canonical(raw) {
		return &Error{Code: codec.CodeMalformed}
	}
	return nil
}
