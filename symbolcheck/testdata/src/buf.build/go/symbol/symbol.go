package symbol

type Alphabet interface{ Chars() string }

type Lower struct{}

const LowerMaxLen = 25

func (Lower) Chars() string { return "abcdefghijklmnopqrstuvwxyz_" }
func (Lower) MaxLen() int   { return LowerMaxLen }

type Symbol struct{ lo, hi uint64 }

type Custom[A Alphabet] struct{ lo, hi uint64 }

func New(s string) (Symbol, error) { return Symbol{}, nil }
func Must(s string) Symbol         { return Symbol{} }

func NewCustom[A Alphabet](s string) (Custom[A], error) { return Custom[A]{}, nil }
func MustCustom[A Alphabet](s string) Custom[A]         { return Custom[A]{} }
