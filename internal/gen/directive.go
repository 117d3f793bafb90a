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

package gen

import (
	"fmt"
	"go/ast"
	"go/token"
	"regexp"
	"strconv"
	"strings"
)

const prefix = "//symbol:"

var (
	quoted = `("(?:[^"\\]|\\.)*"|` + "`[^`]*`" + `)`

	alphabetDirective = regexp.MustCompile(`^//symbol:alphabet\s+(\w+)\s+` + quoted + `(?:\s+max=(\d+))?\s*$`)
	constDirective    = regexp.MustCompile(`^//symbol:const\s+(\w+)\s+` + quoted + `(?:\s+(\w+))?\s*$`)
)

// ScanFile collects the directives in the comments of f.
//
// Two directives are recognized:
//
//	//symbol:alphabet Name "chars" [max=N]
//	//symbol:const Name "literal" [Alphabet]
//
// Any other comment starting with //symbol: is an error.
func (f *File) ScanFile(fset *token.FileSet, file *ast.File) error {
	var errs []error
	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if !strings.HasPrefix(c.Text, prefix) {
				continue
			}
			if err := f.scanDirective(fset.Position(c.Pos()).String(), c.Text); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return join(errs)
}

func (f *File) scanDirective(where, text string) error {
	if m := alphabetDirective.FindStringSubmatch(text); m != nil {
		chars, err := strconv.Unquote(m[2])
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}

		var maxLen int
		if m[3] != "" {
			if maxLen, err = strconv.Atoi(m[3]); err != nil {
				return fmt.Errorf("%s: %w", where, err)
			}
		}

		f.Alphabets = append(f.Alphabets, &Alphabet{
			Name: m[1], Chars: chars, MaxLen: maxLen, Where: where,
		})
		return nil
	}

	if m := constDirective.FindStringSubmatch(text); m != nil {
		value, err := strconv.Unquote(m[2])
		if err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}

		f.Consts = append(f.Consts, &Const{
			Name: m[1], Value: value, Alphabet: m[3], Where: where,
		})
		return nil
	}

	return fmt.Errorf("%s: malformed directive %q", where, text)
}
