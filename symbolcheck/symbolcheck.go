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

// Package symbolcheck defines an analyzer that validates symbol literals
// and alphabet definitions when a program is vetted.
//
// It reports constant arguments to symbol.New, symbol.Must,
// symbol.NewCustom, and symbol.MustCustom that are not valid symbols, and
// alphabet types whose Chars method returns a malformed alphabet. Alphabets
// defined in other packages are checked through an [AlphabetFact] exported
// when their own package is analyzed.
//
// Only alphabets whose Chars (and MaxLen, if present) methods consist of a
// single return of a constant are understood; anything else is skipped.
package symbolcheck

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"buf.build/go/symbol/internal/codec"
)

const symbolPath = "buf.build/go/symbol"

// Analyzer is the symbolcheck analyzer.
var Analyzer = &analysis.Analyzer{
	Name:      "symbolcheck",
	Doc:       "check that symbol literals and alphabets are valid",
	URL:       "https://pkg.go.dev/buf.build/go/symbol/symbolcheck",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	FactTypes: []analysis.Fact{new(AlphabetFact)},
	Run:       run,
}

// AlphabetFact is attached to alphabet types with constant definitions.
type AlphabetFact struct {
	Chars  string
	MaxLen int
}

// AFact implements [analysis.Fact].
func (*AlphabetFact) AFact() {}

func (f *AlphabetFact) String() string {
	return fmt.Sprintf("alphabet(%q, %d)", f.Chars, f.MaxLen)
}

// alphabetDecl is an alphabet type being assembled from its methods.
type alphabetDecl struct {
	chars  *string
	maxLen *int
	at     ast.Expr // The Chars return value, where errors are reported.
	opaque bool     // Some method is not a constant.
}

func run(pass *analysis.Pass) (any, error) {
	if !usesSymbol(pass.Pkg) {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector) //nolint:errcheck

	decls := make(map[*types.TypeName]*alphabetDecl)
	var order []*types.TypeName
	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl) //nolint:errcheck
		if fn.Recv == nil || (fn.Name.Name != "Chars" && fn.Name.Name != "MaxLen") {
			return
		}
		obj := receiverType(pass, fn)
		if obj == nil {
			return
		}

		d := decls[obj]
		if d == nil {
			d = new(alphabetDecl)
			decls[obj] = d
			order = append(order, obj)
		}

		value, expr := constantReturn(pass, fn)
		switch {
		case fn.Name.Name == "Chars" && value != nil && value.Kind() == constant.String:
			s := constant.StringVal(value)
			d.chars, d.at = &s, expr
		case fn.Name.Name == "MaxLen" && value != nil && value.Kind() == constant.Int:
			n, ok := constant.Int64Val(value)
			m := int(n)
			d.maxLen = &m
			d.opaque = d.opaque || !ok
		default:
			d.opaque = true
		}
	})

	for _, obj := range order {
		d := decls[obj]
		if d.opaque || d.chars == nil {
			continue
		}

		fact := &AlphabetFact{Chars: *d.chars}
		if d.maxLen != nil {
			fact.MaxLen = *d.maxLen
		}
		if _, err := codec.New(fact.Chars, fact.MaxLen); err != nil {
			pass.Reportf(d.at.Pos(), "invalid alphabet %s: %v", obj.Name(), err)
			continue
		}
		pass.ExportObjectFact(obj, fact)
	}

	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		checkCall(pass, n.(*ast.CallExpr)) //nolint:errcheck
	})
	return nil, nil
}

// checkCall validates a call to one of the symbol constructors.
func checkCall(pass *analysis.Pass, call *ast.CallExpr) {
	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != symbolPath || len(call.Args) != 1 {
		return
	}

	var alphabet *AlphabetFact
	switch fn.Name() {
	case "New", "Must":
		alphabet = &AlphabetFact{Chars: lowerChars, MaxLen: lowerMaxLen}
	case "NewCustom", "MustCustom":
		alphabet = typeArgFact(pass, call.Fun)
		if alphabet == nil {
			return
		}
	default:
		return
	}

	tv, ok := pass.TypesInfo.Types[call.Args[0]]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return
	}
	s := constant.StringVal(tv.Value)

	t, err := codec.New(alphabet.Chars, alphabet.MaxLen)
	if err != nil {
		return // Reported at the alphabet's definition.
	}
	if err := t.Validate(s); err != nil {
		pass.Reportf(call.Args[0].Pos(), "invalid symbol %q: %v", s, err)
	}
}

// Kept in sync with symbol.Lower; the tests check this.
const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz_"
	lowerMaxLen = 25
)

// typeArgFact returns the alphabet fact for the type argument of an
// instantiated NewCustom or MustCustom.
func typeArgFact(pass *analysis.Pass, fun ast.Expr) *AlphabetFact {
	fun = ast.Unparen(fun)
	switch e := fun.(type) {
	case *ast.IndexExpr:
		fun = e.X
	case *ast.IndexListExpr:
		fun = e.X
	}

	var id *ast.Ident
	switch e := ast.Unparen(fun).(type) {
	case *ast.Ident:
		id = e
	case *ast.SelectorExpr:
		id = e.Sel
	default:
		return nil
	}

	inst, ok := pass.TypesInfo.Instances[id]
	if !ok || inst.TypeArgs.Len() != 1 {
		return nil
	}
	named, ok := types.Unalias(inst.TypeArgs.At(0)).(*types.Named)
	if !ok {
		return nil
	}

	fact := new(AlphabetFact)
	if !pass.ImportObjectFact(named.Obj(), fact) {
		return nil
	}
	return fact
}

// receiverType returns the named type a method is declared on.
func receiverType(pass *analysis.Pass, fn *ast.FuncDecl) *types.TypeName {
	obj, ok := pass.TypesInfo.Defs[fn.Name].(*types.Func)
	if !ok {
		return nil
	}
	recv := obj.Type().(*types.Signature).Recv() //nolint:errcheck
	if recv == nil {
		return nil
	}

	ty := recv.Type()
	if ptr, ok := ty.(*types.Pointer); ok {
		ty = ptr.Elem()
	}
	named, ok := types.Unalias(ty).(*types.Named)
	if !ok {
		return nil
	}
	return named.Obj()
}

// constantReturn returns the value of fn's body if it is a lone return of a
// constant with no parameters.
func constantReturn(pass *analysis.Pass, fn *ast.FuncDecl) (constant.Value, ast.Expr) {
	if fn.Body == nil || fn.Type.Params.NumFields() != 0 || len(fn.Body.List) != 1 {
		return nil, nil
	}
	ret, ok := fn.Body.List[0].(*ast.ReturnStmt)
	if !ok || len(ret.Results) != 1 {
		return nil, nil
	}
	return pass.TypesInfo.Types[ret.Results[0]].Value, ret.Results[0]
}

// usesSymbol returns whether pkg is the symbol package or imports it.
func usesSymbol(pkg *types.Package) bool {
	if pkg.Path() == symbolPath {
		return true
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == symbolPath {
			return true
		}
	}
	return false
}
