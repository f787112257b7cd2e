package codec

import (
	"fmt"
	"strings"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/key"
	"github.com/arloliu/bigraph/meaning"
	"github.com/arloliu/bigraph/token"
)

// Encoder converts text into token streams using a shared key.
//
// The Encoder itself is stateless and safe for concurrent use; all mutable
// encoding state lives in a per-call encodingContext.
type Encoder struct {
	model *key.Model
}

// NewEncoder creates an Encoder over the given key model.
func NewEncoder(model *key.Model) *Encoder {
	return &Encoder{model: model}
}

// Encode converts text into an ordered token stream.
//
// The text is uppercased and split into sentences and words. One space-marker
// token separates words within a sentence and two consecutive space-marker
// tokens separate sentences; neither appears after the final word or
// sentence. Empty input yields an empty stream.
//
// Returns:
//   - []token.Token: Encoded stream
//   - error: ErrUnknownMeaning if the text contains a construct the symbol
//     table cannot represent (e.g. a digit embedded in a letters word)
func (e *Encoder) Encode(text string) ([]token.Token, error) {
	ctx := &encodingContext{}
	sentences := SplitSentences(strings.ToUpper(text))

	var out []token.Token
	for i, sentence := range sentences {
		encoded, err := e.encodeSentence(ctx, sentence)
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)

		if i < len(sentences)-1 {
			first, err := e.spaceMarker(ctx)
			if err != nil {
				return nil, err
			}
			second, err := e.spaceMarker(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, first, second)
		}
	}

	return out, nil
}

// EncodeMathExpression encodes a three-part expression "number operator
// number" where the operator is * or /.
//
// The first operand's digits are always emitted as positive digit symbols.
// An operator-marker symbol follows. The second operand's digits are emitted
// as negative digit symbols when the operator is /, positive otherwise; the
// sign alone conveys the operator on decode. Non-digit characters inside the
// operand parts are skipped.
//
// Returns:
//   - []token.Token: Encoded stream
//   - error: ErrMalformedMathExpression if the expression has fewer than
//     three whitespace-separated parts
func (e *Encoder) EncodeMathExpression(expr string) ([]token.Token, error) {
	parts := strings.Fields(expr)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%w: %q needs the form \"number operator number\"", errs.ErrMalformedMathExpression, expr)
	}

	operator := parts[1]

	var out []token.Token

	appendDigits := func(operand string, negative bool) error {
		for i := 0; i < len(operand); i++ {
			c := operand[i]
			if c < '0' || c > '9' {
				continue
			}

			var (
				m   meaning.Meaning
				err error
			)
			if negative {
				m, err = meaning.NegDigit(int(c - '0'))
			} else {
				m, err = meaning.Digit(int(c - '0'))
			}
			if err != nil {
				return err
			}

			sym, err := e.symbolFor(m)
			if err != nil {
				return err
			}
			out = append(out, token.Plain(sym))
		}

		return nil
	}

	if err := appendDigits(parts[0], false); err != nil {
		return nil, err
	}

	muldiv, err := e.symbolFor(meaning.MulDiv())
	if err != nil {
		return nil, err
	}
	out = append(out, token.Plain(muldiv))

	if err := appendDigits(parts[2], operator == "/"); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Encoder) encodeSentence(ctx *encodingContext, sentence string) ([]token.Token, error) {
	words := SplitWords(sentence)

	var out []token.Token
	for i, word := range words {
		if word != "" {
			encoded, err := e.encodeWord(ctx, word)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded...)
		}

		if i < len(words)-1 {
			marker, err := e.spaceMarker(ctx)
			if err != nil {
				return nil, err
			}
			out = append(out, marker)
		}
	}

	return out, nil
}

func (e *Encoder) encodeWord(ctx *encodingContext, word string) ([]token.Token, error) {
	switch {
	case word == "A":
		t, err := e.rotatedStandalone('A', &ctx.aRotationIndex)
		if err != nil {
			return nil, err
		}

		return []token.Token{t}, nil

	case word == "I":
		t, err := e.rotatedStandalone('I', &ctx.iRotationIndex)
		if err != nil {
			return nil, err
		}

		return []token.Token{t}, nil

	case isAllDigits(word):
		return e.encodeDigits(word)

	default:
		return e.encodeLetters(word)
	}
}

// rotatedStandalone encodes a standalone "A" or "I" word as a partial-before
// reference to the bigram <letter><companion>, where the companion letter
// advances through A..Z on every call. Consecutive standalone occurrences
// therefore never collide on the same symbol.
func (e *Encoder) rotatedStandalone(letter byte, rotation *int) (token.Token, error) {
	companion := meaning.Letters[*rotation%len(meaning.Letters)]
	*rotation++

	m, err := meaning.Bigram(letter, companion)
	if err != nil {
		return token.Token{}, err
	}

	sym, err := e.symbolFor(m)
	if err != nil {
		return token.Token{}, err
	}

	return token.Before(sym), nil
}

func (e *Encoder) encodeDigits(word string) ([]token.Token, error) {
	out := make([]token.Token, 0, len(word))
	for i := 0; i < len(word); i++ {
		m, err := meaning.Digit(int(word[i] - '0'))
		if err != nil {
			return nil, err
		}

		sym, err := e.symbolFor(m)
		if err != nil {
			return nil, err
		}
		out = append(out, token.Plain(sym))
	}

	return out, nil
}

func (e *Encoder) encodeLetters(word string) ([]token.Token, error) {
	pairEnd := len(word)
	odd := len(word)%2 != 0
	if odd {
		pairEnd--
	}

	var out []token.Token
	for i := 0; i < pairEnd; i += 2 {
		sym, err := e.bigramSymbol(word[i], word[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, token.Plain(sym))
	}

	if odd {
		final, err := e.finalLetterToken(word)
		if err != nil {
			return nil, err
		}
		out = append(out, final)
	}

	return out, nil
}

// finalLetterToken resolves the last letter of an odd-length word.
//
// If the letter occurs earlier in the word, the token borrows the bigram
// that occurrence belongs to: a partial-before marker when the occurrence is
// the bigram's first letter, partial-after when it is the second. With no
// earlier occurrence, the token references the synthetic bigram
// <letter><SyntheticCompanion> with a partial-before marker, so only the
// real letter is read back on decode.
func (e *Encoder) finalLetterToken(word string) (token.Token, error) {
	last := word[len(word)-1]

	for i := 0; i < len(word)-1; i++ {
		if word[i] != last {
			continue
		}

		start := (i / 2) * 2
		sym, err := e.bigramSymbol(word[start], word[start+1])
		if err != nil {
			return token.Token{}, err
		}

		if i%2 == 0 {
			return token.Before(sym), nil
		}

		return token.After(sym), nil
	}

	sym, err := e.bigramSymbol(last, meaning.SyntheticCompanion)
	if err != nil {
		return token.Token{}, err
	}

	return token.Before(sym), nil
}

func (e *Encoder) spaceMarker(ctx *encodingContext) (token.Token, error) {
	m := meaning.SpaceMarkerAt(ctx.spaceMarkerIndex)
	ctx.spaceMarkerIndex++

	sym, err := e.symbolFor(m)
	if err != nil {
		return token.Token{}, err
	}

	return token.Plain(sym), nil
}

func (e *Encoder) bigramSymbol(first, second byte) (int, error) {
	m, err := meaning.Bigram(first, second)
	if err != nil {
		return 0, err
	}

	return e.symbolFor(m)
}

// symbolFor resolves a meaning to its symbol index. A miss is unreachable
// while the key covers the full universe, but surfaces as a typed error
// instead of a silently dropped token.
func (e *Encoder) symbolFor(m meaning.Meaning) (int, error) {
	sym, ok := e.model.SymbolFor(m)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no symbol in key %x", errs.ErrUnknownMeaning, m, e.model.ID())
	}

	return sym, nil
}

func isAllDigits(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}

	return len(word) > 0
}
