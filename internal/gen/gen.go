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

// Package gen implements symbolgen, which computes symbols ahead of time
// and writes them out as Go source.
//
// Every literal is validated and encoded with the same codec the library
// uses at run time, so a generated symbol is identical to one built with
// symbol.New. Any invalid literal or alphabet fails generation, and nothing
// is written.
package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
	"lukechampine.com/uint128"

	"buf.build/go/symbol"
	"buf.build/go/symbol/internal/codec"
)

// DefaultOutput is the name of the generated file.
const DefaultOutput = "symbols_gen.go"

// File is everything that goes into one generated file.
type File struct {
	Package   string
	Alphabets []*Alphabet
	Consts    []*Const
}

// Alphabet is a declared alphabet type.
type Alphabet struct {
	Name   string
	Chars  string
	MaxLen int // Zero to derive from the alphabet's size.

	Where string // Where this was declared, for diagnostics.

	table *codec.Table
}

// Const is a declared symbol variable.
type Const struct {
	Name     string
	Value    string
	Alphabet string // Empty for the built-in alphabet.

	Where string

	raw uint128.Uint128
}

// Options configures [Generate].
type Options struct {
	Dir      string // The package directory; defaults to ".".
	Output   string // The output file name, relative to Dir; defaults to [DefaultOutput].
	Manifest string // An optional YAML manifest; see [Manifest].

	Logger *zap.Logger
}

// Generate loads the package in opts.Dir, collects its declarations, and
// writes the generated file. It returns the path of the file written, or ""
// if there was nothing to generate.
func Generate(ctx context.Context, opts Options) (string, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	out := filepath.Join(opts.Dir, opts.Output)

	f, err := Load(ctx, opts.Dir, out)
	if err != nil {
		return "", err
	}
	if opts.Manifest != "" {
		if err := f.ReadManifest(opts.Manifest); err != nil {
			return "", err
		}
	}

	if len(f.Alphabets) == 0 && len(f.Consts) == 0 {
		opts.Logger.Warn("no symbols declared", zap.String("package", f.Package))
		return "", nil
	}

	if err := f.Check(); err != nil {
		return "", err
	}
	src, err := f.Render()
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(out, src, 0o644); err != nil { //nolint:gosec // Generated source is not secret.
		return "", err
	}
	opts.Logger.Info("wrote symbols",
		zap.String("path", out),
		zap.Int("alphabets", len(f.Alphabets)),
		zap.Int("symbols", len(f.Consts)),
	)
	return out, nil
}

// Load parses the package in dir and scans it for directives, skipping the
// file at skip, which is normally a previous output.
func Load(ctx context.Context, dir, skip string) (*File, error) {
	fset := token.NewFileSet()
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:     dir,
		Fset:    fset,
	}, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, got %d", dir, len(pkgs))
	}

	// Only syntax errors matter: imports are never resolved, and a package
	// that does not build yet is normal before its symbols are generated.
	pkg := pkgs[0]
	var errs []error
	for _, err := range pkg.Errors {
		if err.Kind == packages.ParseError {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, join(errs)
	}

	skip, _ = filepath.Abs(skip)
	f := &File{Package: pkg.Name}
	for _, file := range pkg.Syntax {
		if path, _ := filepath.Abs(fset.Position(file.Package).Filename); path == skip {
			continue
		}
		if err := f.ScanFile(fset, file); err != nil {
			errs = append(errs, err)
		}
	}
	return f, join(errs)
}

// Check validates every declaration and encodes every symbol.
//
// All problems are reported, not just the first.
func (f *File) Check() error {
	var errs []error
	names := make(map[string]string)
	declare := func(name, where string) {
		if prev, ok := names[name]; ok {
			errs = append(errs, fmt.Errorf("%s: %s redeclared; previous declaration at %s", where, name, prev))
			return
		}
		if !token.IsIdentifier(name) {
			errs = append(errs, fmt.Errorf("%s: %q is not a valid identifier", where, name))
		}
		names[name] = where
	}

	alphabets := make(map[string]*Alphabet)
	for _, a := range f.Alphabets {
		declare(a.Name, a.Where)
		alphabets[a.Name] = a

		t, err := codec.New(a.Chars, a.MaxLen)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: alphabet %s: %w", a.Where, a.Name, err))
			continue
		}
		a.table = t
	}

	lower, err := codec.New(symbol.Lower{}.Chars(), symbol.LowerMaxLen)
	if err != nil {
		return err
	}

	for _, c := range f.Consts {
		declare(c.Name, c.Where)

		t := lower
		if a, ok := alphabets[c.Alphabet]; ok {
			if a.table == nil {
				continue // Already reported.
			}
			t = a.table
		} else if c.Alphabet == "Lower" {
			c.Alphabet = ""
		} else if c.Alphabet != "" {
			errs = append(errs, fmt.Errorf("%s: unknown alphabet %s", c.Where, c.Alphabet))
			continue
		}

		raw, err := t.Encode(c.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: symbol %s: %w", c.Where, c.Name, err))
			continue
		}
		c.raw = raw
	}

	return join(errs)
}

// Render produces the formatted source of the generated file. [File.Check]
// must have succeeded first.
func (f *File) Render() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, f); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

// Capped returns whether the alphabet overrides its derived maximum length.
func (a *Alphabet) Capped() bool {
	return a.MaxLen != 0
}

// Size returns the number of characters in the alphabet.
func (a *Alphabet) Size() int {
	return a.table.Size()
}

// Lo and Hi return the halves of the encoded symbol, as Go literals.
func (c *Const) Lo() string { return fmt.Sprintf("%#x", c.raw.Lo) }
func (c *Const) Hi() string { return fmt.Sprintf("%#x", c.raw.Hi) }

var tmpl = template.Must(template.New("symbols").Parse(`// Code generated by symbolgen. DO NOT EDIT.

package {{.Package}}

{{if .Consts}}
import (
	"buf.build/go/symbol"
	"lukechampine.com/uint128"
)
{{end}}

{{range .Alphabets}}
// {{.Name}} is an alphabet of {{.Size}} characters: {{printf "%q" .Chars}}.
type {{.Name}} struct{}

// Chars implements [symbol.Alphabet].
func ({{.Name}}) Chars() string { return {{printf "%q" .Chars}} }
{{if .Capped}}
// MaxLen implements [symbol.Alphabet].
func ({{.Name}}) MaxLen() int { return {{.MaxLen}} }
{{end}}
{{end}}

{{if .Consts}}
var (
{{- range .Consts}}
	// {{.Name}} is the symbol {{printf "%q" .Value}}.
	{{.Name}} = {{if .Alphabet}}symbol.CustomFromRaw[{{.Alphabet}}]{{else}}symbol.FromRaw{{end}}(uint128.Uint128{Lo: {{.Lo}}, Hi: {{.Hi}}})
{{end -}}
)
{{end}}
`))

// join is like [errors.Join], but returns the lone error unchanged so that
// single failures print without extra wrapping.
func join(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
