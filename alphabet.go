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
	"reflect"

	"buf.build/go/symbol/internal/codec"
	"buf.build/go/symbol/internal/xsync"
)

// Alphabet is an ordered set of characters that symbols may contain.
//
// Implementations should be empty struct types; the zero value is used to
// call Chars. The character at index i has rank i+1, and Chars must return the
// same string every time it is called.
//
// An Alphabet may also implement
//
//	MaxLen() int
//
// to lower its maximum symbol length below the bound derived from its size.
type Alphabet interface {
	Chars() string
}

// Lower is the built-in alphabet used by [Symbol]: the lowercase letters a
// through z followed by underscore.
type Lower struct{}

// LowerMaxLen is the maximum length of a [Symbol].
//
// This is one less than the 26 characters a base-28 numeral could hold in
// 128 bits.
const LowerMaxLen = 25

// Chars implements [Alphabet].
func (Lower) Chars() string { return "abcdefghijklmnopqrstuvwxyz_" }

// MaxLen caps [Lower] at [LowerMaxLen].
func (Lower) MaxLen() int { return LowerMaxLen }

type compiled struct {
	table *codec.Table
	err   error
}

var tables xsync.Map[reflect.Type, compiled]

// lowerTable is the table for [Symbol], resolved once so that the hot paths
// skip the cache.
var lowerTable = mustTable[Lower]()

// tableOf returns the compiled table for A, building it on first use.
func tableOf[A Alphabet]() (*codec.Table, error) {
	c, _ := tables.LoadOrStore(reflect.TypeFor[A](), func() compiled {
		var a A
		var maxLen int
		if m, ok := any(a).(interface{ MaxLen() int }); ok {
			maxLen = m.MaxLen()
		}

		t, err := codec.New(a.Chars(), maxLen)
		if err != nil {
			err = fmt.Errorf("%v: %w", reflect.TypeFor[A](), err)
		}
		return compiled{t, err}
	})
	return c.table, c.err
}

func mustTable[A Alphabet]() *codec.Table {
	t, err := tableOf[A]()
	if err != nil {
		panic(err)
	}
	return t
}

// Define checks that A is a well-formed alphabet: it must have at least one
// character, no character may repeat, and a MaxLen method, if present, must
// not exceed the derived bound.
func Define[A Alphabet]() error {
	_, err := tableOf[A]()
	return err
}

// MustDefine is like [Define], but panics on error. It is intended for
// package-level declarations, so that a malformed alphabet fails as soon as
// its package is initialized:
//
//	var _ = symbol.MustDefine[Digits]()
func MustDefine[A Alphabet]() A {
	mustTable[A]()
	var a A
	return a
}

// MaxLen returns the maximum symbol length for alphabet A.
//
// Panics if A is not a well-formed alphabet.
func MaxLen[A Alphabet]() int {
	return mustTable[A]().MaxLen()
}
