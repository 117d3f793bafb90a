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

package gen_test

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"buf.build/go/symbol"
	"buf.build/go/symbol/internal/gen"
)

const source = `package names

//symbol:alphabet Digits "0123456789"
//symbol:alphabet Tiny "ab" max=3

//symbol:const Hello "hello"
//symbol:const HelloWorld "hello_world" Lower
//symbol:const Year "2025" Digits
//symbol:const Baa "baa" Tiny

// Not a directive: symbol:const Nope "nope"
`

func scan(t *testing.T, src string) (*gen.File, error) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "names.go", src, parser.ParseComments)
	require.NoError(t, err)

	f := &gen.File{Package: file.Name.Name}
	return f, f.ScanFile(fset, file)
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	f, err := scan(t, source)
	require.NoError(t, err)

	require.Len(t, f.Alphabets, 2)
	assert.Equal(t, "Digits", f.Alphabets[0].Name)
	assert.Equal(t, "0123456789", f.Alphabets[0].Chars)
	assert.Zero(t, f.Alphabets[0].MaxLen)
	assert.Equal(t, "names.go:3:1", f.Alphabets[0].Where)
	assert.Equal(t, "ab", f.Alphabets[1].Chars)
	assert.Equal(t, 3, f.Alphabets[1].MaxLen)

	require.Len(t, f.Consts, 4)
	assert.Equal(t, "Hello", f.Consts[0].Name)
	assert.Equal(t, "hello", f.Consts[0].Value)
	assert.Empty(t, f.Consts[0].Alphabet)
	assert.Equal(t, "Lower", f.Consts[1].Alphabet)
	assert.Equal(t, "Digits", f.Consts[2].Alphabet)

	f, err = scan(t, "package p\n\n//symbol:alphabet Raw `a\"b`\n")
	require.NoError(t, err)
	assert.Equal(t, `a"b`, f.Alphabets[0].Chars)

	_, err = scan(t, "package p\n\n//symbol:cosnt X \"x\"\n")
	require.ErrorContains(t, err, "names.go:3:1: malformed directive")

	_, err = scan(t, "package p\n\n//symbol:const X unquoted\n")
	require.ErrorContains(t, err, "malformed directive")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	f, err := scan(t, source)
	require.NoError(t, err)
	require.NoError(t, f.Check())

	src, err := f.Render()
	require.NoError(t, err)

	hello := symbol.Must("hello").Raw()
	assert.Contains(t, string(src), "// Code generated by symbolgen. DO NOT EDIT.")
	assert.Contains(t, string(src), "package names")
	assert.Contains(t, string(src), "func (Digits) Chars() string { return \"0123456789\" }")
	assert.Contains(t, string(src), "func (Tiny) MaxLen() int { return 3 }")
	assert.NotContains(t, string(src), "func (Digits) MaxLen()")
	assert.Contains(t, string(src), "Hello = symbol.FromRaw(uint128.Uint128{Lo: 0x1d87ff0000000000, Hi: 0x551ac646e006e0})")
	assert.Equal(t, uint64(0x1d87ff0000000000), hello.Lo)
	assert.Contains(t, string(src), "HelloWorld = symbol.FromRaw(")
	assert.Contains(t, string(src), "Year = symbol.CustomFromRaw[Digits](")
	assert.Contains(t, string(src), "Baa = symbol.CustomFromRaw[Tiny](")

	_, err = parser.ParseFile(token.NewFileSet(), "symbols_gen.go", src, 0)
	require.NoError(t, err)
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, src string
		want      []string
		is        error
	}{
		{
			name: "invalid-char",
			src:  "//symbol:const Hello \"HELLO\"",
			want: []string{"names.go:3:1: symbol Hello: symbol: invalid character 'H' at position 0"},
			is:   symbol.ErrInvalidChar,
		},
		{
			name: "too-long",
			src:  "//symbol:const Long \"abcdefghijklmnopqrstuvwxyz\"",
			want: []string{"symbol Long: symbol: string too long: length 26 exceeds maximum of 25"},
			is:   symbol.ErrTooLong,
		},
		{
			name: "custom-too-long",
			src:  "//symbol:alphabet AB \"ab\" max=2\n//symbol:const X \"aba\" AB",
			want: []string{"symbol X:"},
			is:   symbol.ErrTooLong,
		},
		{
			name: "duplicate-char",
			src:  "//symbol:alphabet Bad \"abca\"\n//symbol:const X \"a\" Bad",
			want: []string{"alphabet Bad: symbol: duplicate character in alphabet 'a' at position 3"},
			is:   symbol.ErrDuplicateChar,
		},
		{
			name: "empty-alphabet",
			src:  "//symbol:alphabet Bad \"\"",
			is:   symbol.ErrEmptyAlphabet,
		},
		{
			name: "bad-max",
			src:  "//symbol:alphabet Bad \"01\" max=81",
			is:   symbol.ErrBadMaxLen,
		},
		{
			name: "unknown-alphabet",
			src:  "//symbol:const X \"1\" Digits",
			want: []string{"unknown alphabet Digits"},
		},
		{
			name: "redeclared",
			src:  "//symbol:const X \"a\"\n//symbol:const X \"b\"",
			want: []string{"names.go:4:1: X redeclared; previous declaration at names.go:3:1"},
		},
		{
			name: "all-reported",
			src:  "//symbol:const X \"A\"\n//symbol:const Y \"B\"",
			want: []string{"symbol X:", "symbol Y:"},
			is:   symbol.ErrInvalidChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := scan(t, "package names\n\n"+tt.src+"\n")
			require.NoError(t, err)

			err = f.Check()
			require.Error(t, err)
			for _, want := range tt.want {
				assert.ErrorContains(t, err, want)
			}
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
alphabets:
  - name: Digits
    chars: "0123456789"
symbols:
  - name: Hello
    value: hello
  - name: Year
    value: "2025"
    alphabet: Digits
`), 0o600))

	f := &gen.File{Package: "names"}
	require.NoError(t, f.ReadManifest(path))
	require.Len(t, f.Alphabets, 1)
	require.Len(t, f.Consts, 2)
	assert.Equal(t, path+": symbols[1]", f.Consts[1].Where)
	require.NoError(t, f.Check())

	require.NoError(t, os.WriteFile(path, []byte("symbols:\n  - name: X\n    valeu: x\n"), 0o600))
	require.Error(t, (&gen.File{}).ReadManifest(path))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	write("go.mod", "module example.com/names\n\ngo 1.23\n")
	write("names.go", source)

	ctx := context.Background()
	out, err := gen.Generate(ctx, gen.Options{Dir: dir, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, gen.DefaultOutput), out)

	first, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(first), "Year = symbol.CustomFromRaw[Digits](")

	// Regenerating skips the previous output and is stable.
	_, err = gen.Generate(ctx, gen.Options{Dir: dir})
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	// A bad literal fails without touching the previous output.
	write("bad.go", "package names\n\n//symbol:const Bad \"Bad\"\n")
	_, err = gen.Generate(ctx, gen.Options{Dir: dir})
	require.ErrorIs(t, err, symbol.ErrInvalidChar)
	require.ErrorContains(t, err, "bad.go:3:1")
	third, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(third))
}
