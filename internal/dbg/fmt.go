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

// Package dbg includes formatting helpers for debug traces.
package dbg

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Formatter is a fmt.Formatter implementation that just calls a function.
type Formatter func(s fmt.State)

func (f Formatter) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		fmt.Fprintf(s, "%%!%c(dbg.Formatter)", verb)
		return
	}
	f(s)
}

func (f Formatter) String() string { return fmt.Sprint(f) }

// Fprintf is like Fprintf, but the printing is delayed until the returned value
// is formatted with %v.
func Fprintf(format string, args ...any) Formatter {
	return Formatter(func(s fmt.State) { fmt.Fprintf(s, format, args...) })
}

// Digits prints the n base-b digits of v, most significant first, with
// trailing zero digits elided.
//
// The digits are only computed when the result is formatted, so this is cheap
// to pass to a trace that gets filtered out.
func Digits(v uint128.Uint128, base uint64, n int) Formatter {
	return Formatter(func(s fmt.State) {
		if base < 2 || n <= 0 {
			fmt.Fprint(s, "[]")
			return
		}

		digits := make([]uint64, n)
		for i := n - 1; i >= 0; i-- {
			v, digits[i] = v.QuoRem64(base)
		}

		end := n
		for end > 0 && digits[end-1] == 0 {
			end--
		}
		fmt.Fprint(s, digits[:end])
		if end < n {
			fmt.Fprintf(s, "+%d", n-end)
		}
	})
}
