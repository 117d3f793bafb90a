package b

import "buf.build/go/symbol"

type Hex struct{}

func (Hex) Chars() string { return "0123456789abcdef" }

var _ symbol.Alphabet = Hex{}
