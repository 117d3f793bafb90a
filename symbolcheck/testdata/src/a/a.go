package a

import (
	"b"

	"buf.build/go/symbol"
)

type Digits struct{} // want Digits:"alphabet\\(\"0123456789\", 0\\)"

func (Digits) Chars() string { return "0123456789" }

type Capped struct{} // want Capped:"alphabet"

func (Capped) Chars() string { return "ab" }
func (Capped) MaxLen() int   { return 2 }

type Empty struct{}

func (Empty) Chars() string { return "" } // want `invalid alphabet Empty: symbol: empty alphabet`

type Dupes struct{}

func (*Dupes) Chars() string { return "abca" } // want `invalid alphabet Dupes: symbol: duplicate character in alphabet 'a' at position 3`

type Greedy struct{}

func (Greedy) Chars() string { return "01" } // want `maximum length out of range: 200 not in \[1, 80\]`
func (Greedy) MaxLen() int   { return 200 }

var chars = "xyz"

type Dynamic struct{}

func (Dynamic) Chars() string { return chars }

type NotAlphabet struct{}

func (NotAlphabet) Chars(n int) string { return "" }

const hello = "hello"

var (
	_ = symbol.Must("hello_world")
	_ = symbol.Must(hello + "_" + hello)
	_ = symbol.Must("HELLO")                      // want `invalid symbol "HELLO": symbol: invalid character 'H' at position 0`
	_ = symbol.Must("abcdefghijklmnopqrstuvwxyz") // want `string too long: length 26 exceeds maximum of 25`
	_ = symbol.Must(chars)

	_ = symbol.MustCustom[Digits]("8675309")
	_ = symbol.MustCustom[Digits]("867-5309") // want `invalid character '-' at position 3`
	_ = symbol.MustCustom[Capped]("ba")
	_ = symbol.MustCustom[Capped]("abb") // want `length 3 exceeds maximum of 2`
	_ = symbol.MustCustom[Dynamic]("anything")
	_ = symbol.MustCustom[Empty]("anything")
	_ = symbol.MustCustom[symbol.Lower]("UP") // want `invalid character 'U' at position 0`
	_ = symbol.MustCustom[b.Hex]("c0ffee")
	_ = symbol.MustCustom[b.Hex]("coffee") // want `invalid character 'o' at position 1`
)

func f() {
	_, _ = symbol.New("hello world") // want `invalid character ' ' at position 5`
	_, _ = symbol.NewCustom[Digits]("42")
	_, _ = (symbol.NewCustom[b.Hex])("g") // want `invalid character 'g' at position 0`
}
