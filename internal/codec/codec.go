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

// Package codec packs short strings over an alphabet into 128-bit integers.
//
// A string of length k over an alphabet of N characters is written as a
// base-(N+1) numeral with exactly L digits, most significant first. Digit i
// is the rank (1..N) of character i for i < k; the remaining digits are zero.
// Because no character has rank zero, the first zero digit marks the end of
// the string, so no length needs to be stored.
package codec

import (
	"math/big"
	"unicode/utf8"

	"lukechampine.com/uint128"

	"buf.build/go/symbol/internal/dbg"
	"buf.build/go/symbol/internal/debug"
)

// Width is the number of bits in an encoded value.
const Width = 128

// Table is a compiled alphabet.
//
// A Table is immutable once constructed and may be shared between
// goroutines.
type Table struct {
	chars []rune
	ascii [utf8.RuneSelf]uint32 // Rank of each ASCII character, or zero.
	other map[rune]uint32       // Ranks of non-ASCII characters.

	base uint64 // len(chars) + 1.
	max  int
}

// New compiles an alphabet from its characters, in rank order.
//
// If maxLen is zero, the maximum string length is derived from the
// alphabet's size with [MaxLen]. Otherwise, maxLen must be between 1 and that
// bound.
func New(chars string, maxLen int) (*Table, error) {
	t := &Table{chars: []rune(chars)}
	if len(t.chars) == 0 {
		return nil, &Error{Code: CodeEmptyAlphabet}
	}

	for i, r := range t.chars {
		rank := uint32(i + 1)
		if t.Rank(r) != 0 {
			return nil, &Error{Code: CodeDuplicateChar, Char: r, Pos: i}
		}

		if r < utf8.RuneSelf {
			t.ascii[r] = rank
			continue
		}
		if t.other == nil {
			t.other = make(map[rune]uint32)
		}
		t.other[r] = rank
	}

	t.base = uint64(len(t.chars)) + 1
	bound := MaxLen(len(t.chars))
	switch {
	case maxLen == 0:
		t.max = bound
	case maxLen < 0 || maxLen > bound:
		return nil, &Error{Code: CodeBadMaxLen, Len: maxLen, Max: bound}
	default:
		t.max = maxLen
	}

	debug.Log("alphabet", "%q: base %d, max length %d", chars, t.base, t.max)
	return t, nil
}

// MaxLen returns the largest L such that (n+1)^L <= 2^128, i.e. the longest
// string over an alphabet of n characters that always fits in a 128-bit
// value.
func MaxLen(n int) int {
	if n < 1 {
		return 0
	}

	base := new(big.Int).SetUint64(uint64(n) + 1)
	limit := new(big.Int).Lsh(big.NewInt(1), Width)
	pow := big.NewInt(1)
	for l := 0; ; l++ {
		pow.Mul(pow, base)
		if pow.Cmp(limit) > 0 {
			return l
		}
	}
}

// Chars returns the alphabet's characters in rank order.
func (t *Table) Chars() string {
	return string(t.chars)
}

// Size returns the number of characters in the alphabet.
func (t *Table) Size() int {
	return len(t.chars)
}

// MaxLen returns the maximum length of a string over this alphabet.
func (t *Table) MaxLen() int {
	return t.max
}

// Rank returns the rank of r, or zero if r is not part of the alphabet.
func (t *Table) Rank(r rune) int {
	if r >= 0 && r < utf8.RuneSelf {
		return int(t.ascii[r])
	}
	return int(t.other[r])
}

// Validate checks that s can be encoded with this alphabet.
//
// Length is checked first and is counted in runes; the first character that
// is not part of the alphabet is reported with its rune position. Bytes that
// are not valid UTF-8 are never part of an alphabet.
func (t *Table) Validate(s string) error {
	if n := utf8.RuneCountInString(s); n > t.max {
		return &Error{Code: CodeTooLong, Len: n, Max: t.max}
	}

	pos := 0
	for i, r := range s {
		if t.Rank(r) == 0 || !validAt(s, i, r) {
			return &Error{Code: CodeInvalidChar, Char: r, Pos: pos}
		}
		pos++
	}
	return nil
}

// validAt reports whether r, found at s[i:], was actually encoded in s rather
// than substituted for a byte that is not valid UTF-8.
func validAt(s string, i int, r rune) bool {
	if r != utf8.RuneError {
		return true
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return size > 1
}

// Encode validates s and packs it into a 128-bit value.
func (t *Table) Encode(s string) (uint128.Uint128, error) {
	if err := t.Validate(s); err != nil {
		return uint128.Zero, err
	}

	var v uint128.Uint128
	n := 0
	for _, r := range s {
		v = v.Mul64(t.base).Add64(uint64(t.Rank(r)))
		n++
	}
	for ; n < t.max; n++ {
		v = v.Mul64(t.base)
	}

	debug.Log("encode", "%q -> %v %v", s, v, dbg.Digits(v, t.base, t.max))
	if debug.Enabled {
		debug.Assert(t.Decode(v) == s, "%q does not round-trip through %v", s, v)
	}
	return v, nil
}

// Decode unpacks a value produced by [Table.Encode].
//
// Decode is total: any value yields some string. Values that were not
// produced by Encode decode to the characters before their first zero digit.
func (t *Table) Decode(v uint128.Uint128) string {
	var digits [Width]uint64
	n, _ := t.unpack(v, &digits)
	if n == 0 {
		return ""
	}

	buf := make([]byte, 0, n)
	for _, d := range digits[:n] {
		buf = utf8.AppendRune(buf, t.chars[d-1])
	}
	return string(buf)
}

// Len returns the length in runes of the string v decodes to.
func (t *Table) Len(v uint128.Uint128) int {
	var digits [Width]uint64
	n, _ := t.unpack(v, &digits)
	return n
}

// Canonical returns whether v is exactly what [Table.Encode] produces for
// some string, i.e. whether Encode(Decode(v)) == v.
func (t *Table) Canonical(v uint128.Uint128) bool {
	var digits [Width]uint64
	_, ok := t.unpack(v, &digits)
	return ok
}

// unpack writes the t.max digits of v into digits, most significant first,
// and returns the number of digits before the first zero.
//
// ok is false if v has non-zero digits after the first zero digit, or does
// not fit in t.max digits at all.
func (t *Table) unpack(v uint128.Uint128, digits *[Width]uint64) (n int, ok bool) {
	for i := t.max - 1; i >= 0; i-- {
		v, digits[i] = v.QuoRem64(t.base)
	}

	n = t.max
	for i, d := range digits[:t.max] {
		if d == 0 {
			n = i
			break
		}
	}
	for _, d := range digits[n:t.max] {
		if d != 0 {
			return n, false
		}
	}
	return n, v.IsZero()
}
