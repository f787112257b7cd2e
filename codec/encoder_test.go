package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/key"
	"github.com/arloliu/bigraph/meaning"
	"github.com/arloliu/bigraph/token"
)

func testModel(t *testing.T) *key.Model {
	t.Helper()

	model, err := key.Build("TestRecipient", 42)
	require.NoError(t, err)

	return model
}

// markerPositions returns the stream indices whose plain symbol resolves to
// a space marker.
func markerPositions(t *testing.T, model *key.Model, tokens []token.Token) []int {
	t.Helper()

	var positions []int
	for i, tok := range tokens {
		if tok.Partial != token.PartialNone {
			continue
		}
		m, ok := model.MeaningFor(tok.Symbol)
		require.True(t, ok)
		if m.Kind() == meaning.KindSpaceMarker {
			positions = append(positions, i)
		}
	}

	return positions
}

func TestEncode_RoundTripEvenWords(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("HELLO WORLD")
	require.NoError(t, err)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Contains(t, decoded, "HELLO")
	require.Contains(t, decoded, "WORLD")
}

func TestEncode_OddLengthFinalLetter(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	// CAT resolves T through the synthetic TA bigram; the letter must come
	// back rather than being dropped.
	tokens, err := encoder.Encode("CAT")
	require.NoError(t, err)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "CAT", decoded)
}

func TestEncode_FinalLetterBorrowsEarlierBigram(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	// THREE: final E occurs earlier as the second letter of RE, so the last
	// token must be a partial-after reference to RE's symbol.
	tokens, err := encoder.Encode("THREE")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	last := tokens[2]
	require.Equal(t, token.PartialAfter, last.Partial)

	re, err := meaning.Bigram('R', 'E')
	require.NoError(t, err)
	reSym, ok := model.SymbolFor(re)
	require.True(t, ok)
	require.Equal(t, reSym, last.Symbol)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "THREE", decoded)
}

func TestEncode_StandaloneRotation(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("A A A")
	require.NoError(t, err)
	// Three partial-before letters with two space markers between them.
	require.Len(t, tokens, 5)

	letters := []token.Token{tokens[0], tokens[2], tokens[4]}
	symbols := make(map[int]struct{})
	for _, tok := range letters {
		require.Equal(t, token.PartialBefore, tok.Partial)
		symbols[tok.Symbol] = struct{}{}
	}
	// The rotation advances on every standalone A, so the three references
	// must be distinct.
	require.Len(t, symbols, 3)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "A A A", decoded)
}

func TestEncode_RotationResetsPerCall(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)

	first, err := encoder.Encode("A")
	require.NoError(t, err)
	second, err := encoder.Encode("A")
	require.NoError(t, err)

	// Counters are call-scoped: a fresh call starts the rotation over.
	require.Equal(t, first, second)
}

func TestEncode_SentenceMarkerDoubling(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("ONE TWO. THREE FOUR.")
	require.NoError(t, err)

	markers := markerPositions(t, model, tokens)
	require.Len(t, markers, 4)
	// One marker inside each sentence, two consecutive ones at the boundary.
	require.Equal(t, markers[1]+1, markers[2])

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "ONE TWO. THREE FOUR", decoded)
}

func TestEncode_SpaceMarkersRotate(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)

	// Seven words produce six space markers, one per rotation position.
	tokens, err := encoder.Encode("AB CD EF GH IJ KL MN")
	require.NoError(t, err)

	markers := markerPositions(t, model, tokens)
	require.Len(t, markers, 6)

	seen := make(map[int]struct{})
	for _, pos := range markers {
		seen[tokens[pos].Symbol] = struct{}{}
	}
	require.Len(t, seen, 6)
}

func TestEncode_Numbers(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("THE YEAR IS 2024")
	require.NoError(t, err)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Contains(t, decoded, "YEAR")
	require.Contains(t, decoded, "2024")
}

func TestEncode_SingleLetterWords(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("I AM A PERSON")
	require.NoError(t, err)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "I AM A PERSON", decoded)
}

func TestEncode_LowercaseInput(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("hello world")
	require.NoError(t, err)

	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", decoded)
}

func TestEncode_Empty(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)

	tokens, err := encoder.Encode("")
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestEncode_MixedAlphanumericWordFails(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)

	// A digit embedded in a letters word has no bigram representation; the
	// encoder must fail instead of silently dropping the pair.
	_, err := encoder.Encode("AB1")
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownMeaning))
}

func TestEncodeMathExpression(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	t.Run("multiplication", func(t *testing.T) {
		tokens, err := encoder.EncodeMathExpression("2 * 3")
		require.NoError(t, err)

		decoded, err := decoder.Decode(tokens)
		require.NoError(t, err)
		require.Equal(t, "2 * 3", decoded)
	})

	t.Run("division", func(t *testing.T) {
		tokens, err := encoder.EncodeMathExpression("6 / 2")
		require.NoError(t, err)

		decoded, err := decoder.Decode(tokens)
		require.NoError(t, err)
		require.Equal(t, "6 / 2", decoded)
	})

	t.Run("multi-digit operands", func(t *testing.T) {
		tokens, err := encoder.EncodeMathExpression("12 / 34")
		require.NoError(t, err)

		decoded, err := decoder.Decode(tokens)
		require.NoError(t, err)
		require.Equal(t, "12 / 34", decoded)
	})

	t.Run("too few parts", func(t *testing.T) {
		_, err := encoder.EncodeMathExpression("2 *")
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrMalformedMathExpression))
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := encoder.EncodeMathExpression("")
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrMalformedMathExpression))
	})
}

func TestEncode_WireRoundTrip(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("CAT SAT. I WIN!")
	require.NoError(t, err)

	parsed, err := token.Parse(token.Format(tokens))
	require.NoError(t, err)
	require.Equal(t, tokens, parsed)

	decoded, err := decoder.Decode(parsed)
	require.NoError(t, err)
	require.Contains(t, decoded, "CAT SAT")
	require.Contains(t, decoded, ". ")
	require.Contains(t, decoded, "WIN")
}
