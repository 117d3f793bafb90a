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

// Package symbol packs short strings into comparable 128-bit values.
//
// A [Symbol] holds a string of at most 25 characters drawn from the alphabet
// a-z and underscore. The string is stored as a base-28 numeral inside a
// single 128-bit integer, so symbols are plain values: they can be copied,
// compared with ==, used as map keys and embedded in fixed-size binary
// layouts, and they convert back to the exact original string.
//
//	hello, err := symbol.New("hello_world")
//	if err != nil {
//		// errors.Is(err, symbol.ErrTooLong) or symbol.ErrInvalidChar.
//	}
//	fmt.Println(hello) // hello_world
//
// No global table is involved; every symbol is self-contained.
//
// # Ordering
//
// Characters occupy the most significant digits of the value and unused
// positions are zero, so comparing two symbols with [Symbol.Compare] orders
// them lexicographically by character rank, with a string sorting before any
// longer string it is a prefix of. Note that rank order is the alphabet's
// order, not byte order: in the built-in alphabet, underscore sorts after z.
//
// # Custom Alphabets
//
// Any type implementing [Alphabet] defines a new alphabet. [Custom] is
// parameterized over it, so symbols of different alphabets are distinct types
// and cannot be mixed up:
//
//	type Digits struct{}
//
//	func (Digits) Chars() string { return "0123456789" }
//
//	var _ = symbol.MustDefine[Digits]()
//
//	n, err := symbol.NewCustom[Digits]("8675309")
//
// The maximum length of a custom alphabet is the largest L such that
// (N+1)^L <= 2^128, where N is the number of characters; see [MaxLen].
//
// # Build-Time Symbols
//
// Symbols whose text is known in advance can be computed before the program
// is built. The symbolgen command (buf.build/go/symbol/cmd/symbolgen) reads
// directives such as
//
//	//symbol:const Hello "hello_world"
//
// and writes statically initialized variables, failing if a literal is not
// valid; the symbolcheck analyzer (buf.build/go/symbol/symbolcheck) reports
// invalid constant arguments to [Must] and [New] from go vet.
package symbol
