// Package token defines the token stream produced by encoding and the
// comma-separated integer wire format it travels in.
//
// In memory a token is an explicit tagged value (symbol index plus partial
// marker), so the wire format's numeric-range tricks cannot be violated by
// construction. On the wire each token collapses to a single signed decimal
// integer for compatibility with existing message files:
//
//   - Plain symbol v:          v in [0, totalSymbols)
//   - Partial-before symbol v: -(v+1), i.e. values in [-totalSymbols, -1]
//   - Partial-after symbol v:  v + 10000
//
// The three ranges stay disjoint only while the symbol universe is strictly
// smaller than the partial-after offset; CheckSymbolRange guards that.
package token

import (
	"fmt"

	"github.com/arloliu/bigraph/errs"
)

// PartialAfterOffset is the wire offset added to a symbol index to mark a
// partial-after token. Symbol universes must stay strictly below it.
const PartialAfterOffset = 10000

// Partial marks which half of a bigram a token contributes on decode.
type Partial uint8

const (
	PartialNone   Partial = 0x0 // PartialNone decodes the full meaning.
	PartialBefore Partial = 0x1 // PartialBefore decodes only the bigram's first letter.
	PartialAfter  Partial = 0x2 // PartialAfter decodes only the bigram's second letter.
)

func (p Partial) String() string {
	switch p {
	case PartialNone:
		return "None"
	case PartialBefore:
		return "Before"
	case PartialAfter:
		return "After"
	default:
		return "Unknown"
	}
}

// Token references one symbol in a key's symbol table, optionally restricted
// to half of the symbol's bigram.
type Token struct {
	Symbol  int
	Partial Partial
}

// Plain creates a token that decodes the symbol's full meaning.
func Plain(symbol int) Token {
	return Token{Symbol: symbol}
}

// Before creates a token that decodes only the first letter of the symbol's
// bigram.
func Before(symbol int) Token {
	return Token{Symbol: symbol, Partial: PartialBefore}
}

// After creates a token that decodes only the second letter of the symbol's
// bigram.
func After(symbol int) Token {
	return Token{Symbol: symbol, Partial: PartialAfter}
}

// Wire returns the single-integer wire form of the token.
func (t Token) Wire() int {
	switch t.Partial {
	case PartialBefore:
		return -t.Symbol - 1
	case PartialAfter:
		return t.Symbol + PartialAfterOffset
	default:
		return t.Symbol
	}
}

// FromWire classifies a wire integer back into a tagged token.
//
// The symbol index is not range-checked here; resolution against a key's
// symbol table happens during decoding.
func FromWire(v int) Token {
	switch {
	case v < 0:
		return Token{Symbol: -(v + 1), Partial: PartialBefore}
	case v >= PartialAfterOffset:
		return Token{Symbol: v - PartialAfterOffset, Partial: PartialAfter}
	default:
		return Token{Symbol: v}
	}
}

// CheckSymbolRange verifies that a symbol universe of the given size keeps
// the three wire ranges disjoint.
//
// Returns:
//   - error: ErrSymbolRangeExceeded when totalSymbols reaches or exceeds
//     PartialAfterOffset, nil otherwise
func CheckSymbolRange(totalSymbols int) error {
	if totalSymbols >= PartialAfterOffset {
		return fmt.Errorf("%w: %d symbols, wire encoding requires fewer than %d",
			errs.ErrSymbolRangeExceeded, totalSymbols, PartialAfterOffset)
	}

	return nil
}
