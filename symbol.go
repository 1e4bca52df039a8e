package huffman

import (
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet, usually a Unicode
// code point.  Negative symbols are not valid.
type Symbol int32

// InvalidSymbol marks the internal nodes of a Tree, which carry no symbol.
// It is also returned by some functions to clearly indicate that no symbol
// is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the symbol as a quoted rune.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolsOf returns the code points of str as Symbols.
func SymbolsOf(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, r := range str {
		out = append(out, Symbol(r))
	}
	return out
}

// StringOf is the inverse of SymbolsOf.
func StringOf(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}
	return string(runes)
}

// Frequencies counts the occurrences of each symbol.
func Frequencies(symbols []Symbol) map[Symbol]uint32 {
	out := make(map[Symbol]uint32)
	for _, s := range symbols {
		out[s]++
	}
	return out
}
