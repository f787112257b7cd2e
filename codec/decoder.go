package codec

import (
	"fmt"
	"strings"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/key"
	"github.com/arloliu/bigraph/meaning"
	"github.com/arloliu/bigraph/token"
)

// Decoder reconstructs text from token streams using a shared key.
//
// Decoding is a single left-to-right pass with one-token lookahead and no
// state beyond the traversal position; a Decoder is safe for concurrent use.
type Decoder struct {
	model *key.Model
}

// NewDecoder creates a Decoder over the given key model.
func NewDecoder(model *key.Model) *Decoder {
	return &Decoder{model: model}
}

// Decode reconstructs text from a token stream.
//
// Two consecutive space markers emit ". " (a sentence boundary) and consume
// both tokens; a lone space marker emits " ". An operator marker emits " / "
// when the next token resolves to a negative digit and " * " otherwise.
// An empty stream yields an empty string.
//
// Returns:
//   - string: Decoded text
//   - error: ErrUnknownSymbol for a symbol index outside the key's table,
//     ErrMalformedTokenStream for a partial marker on a non-bigram meaning
func (d *Decoder) Decode(tokens []token.Token) (string, error) {
	var sb strings.Builder

	for i := 0; i < len(tokens); {
		text, _, consumed, err := d.step(tokens, i)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		i += consumed
	}

	return sb.String(), nil
}

// Detail describes one decoded token for inspection tooling.
type Detail struct {
	// Token is the stream token the record describes. Its Partial field
	// carries the partial-before/partial-after flags.
	Token token.Token

	// Meaning is the resolved meaning of the token's symbol.
	Meaning meaning.Meaning

	// Text is the fragment the token contributed to the decoded output. For
	// a sentence boundary the first marker's record carries ". " and the
	// consumed second marker produces no record of its own.
	Text string
}

// DecodeDetail decodes a stream into per-token diagnostic records.
//
// The traversal and error behavior match Decode exactly; only the output is
// richer. Concatenating the Text fields of the records reproduces Decode's
// result.
func (d *Decoder) DecodeDetail(tokens []token.Token) ([]Detail, error) {
	var details []Detail

	for i := 0; i < len(tokens); {
		text, m, consumed, err := d.step(tokens, i)
		if err != nil {
			return nil, err
		}
		details = append(details, Detail{Token: tokens[i], Meaning: m, Text: text})
		i += consumed
	}

	return details, nil
}

// step decodes the token at position i, returning the emitted fragment, the
// resolved meaning, and how many tokens were consumed (2 for a sentence
// boundary, 1 otherwise).
func (d *Decoder) step(tokens []token.Token, i int) (string, meaning.Meaning, int, error) {
	t := tokens[i]

	m, ok := d.model.MeaningFor(t.Symbol)
	if !ok {
		return "", meaning.Meaning{}, 0, fmt.Errorf("%w: symbol %d outside table of %d symbols",
			errs.ErrUnknownSymbol, t.Symbol, d.model.TotalSymbols())
	}

	switch t.Partial {
	case token.PartialBefore, token.PartialAfter:
		if !m.IsBigram() {
			return "", meaning.Meaning{}, 0, fmt.Errorf("%w: partial marker on %s", errs.ErrMalformedTokenStream, m)
		}
		if t.Partial == token.PartialBefore {
			return string(m.First()), m, 1, nil
		}

		return string(m.Second()), m, 1, nil
	}

	switch m.Kind() {
	case meaning.KindBigram:
		return string([]byte{m.First(), m.Second()}), m, 1, nil

	case meaning.KindSpaceMarker:
		if next, ok := d.peek(tokens, i); ok && next.Kind() == meaning.KindSpaceMarker {
			return ". ", m, 2, nil
		}

		return " ", m, 1, nil

	case meaning.KindDigit, meaning.KindNegDigit:
		// The sign is not re-emitted; a MulDiv token is what reconstructs
		// the operator.
		return string(byte('0' + m.Digit())), m, 1, nil

	case meaning.KindMulDiv:
		if next, ok := d.peek(tokens, i); ok && next.Kind() == meaning.KindNegDigit {
			return " / ", m, 1, nil
		}

		return " * ", m, 1, nil

	case meaning.KindSpecial:
		return string(m.Char()), m, 1, nil

	default:
		return "", meaning.Meaning{}, 0, fmt.Errorf("%w: symbol %d resolves to no known meaning kind",
			errs.ErrMalformedTokenStream, t.Symbol)
	}
}

// peek resolves the plain meaning of the token after position i. A missing,
// partial-marked, or unresolvable next token reports false; any real error
// on that token surfaces when the traversal reaches it.
func (d *Decoder) peek(tokens []token.Token, i int) (meaning.Meaning, bool) {
	if i+1 >= len(tokens) || tokens[i+1].Partial != token.PartialNone {
		return meaning.Meaning{}, false
	}

	m, ok := d.model.MeaningFor(tokens[i+1].Symbol)

	return m, ok
}
