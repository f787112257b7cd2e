package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/meaning"
	"github.com/arloliu/bigraph/token"
)

func TestDecode_Empty(t *testing.T) {
	decoder := NewDecoder(testModel(t))

	decoded, err := decoder.Decode(nil)
	require.NoError(t, err)
	require.Equal(t, "", decoded)
}

func TestDecode_LoneTrailingSpaceMarker(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	sym, ok := model.SymbolFor(meaning.SpaceMarkerAt(0))
	require.True(t, ok)

	// A space marker with no successor is a plain space, not a boundary.
	decoded, err := decoder.Decode([]token.Token{token.Plain(sym)})
	require.NoError(t, err)
	require.Equal(t, " ", decoded)
}

func TestDecode_TrailingMulDivDefaultsToMultiply(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	sym, ok := model.SymbolFor(meaning.MulDiv())
	require.True(t, ok)

	decoded, err := decoder.Decode([]token.Token{token.Plain(sym)})
	require.NoError(t, err)
	require.Equal(t, " * ", decoded)
}

func TestDecode_SpecialCharacter(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	special, err := meaning.Special('!')
	require.NoError(t, err)
	sym, ok := model.SymbolFor(special)
	require.True(t, ok)

	decoded, err := decoder.Decode([]token.Token{token.Plain(sym)})
	require.NoError(t, err)
	require.Equal(t, "!", decoded)
}

func TestDecode_SymbolOutOfRange(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	_, err := decoder.Decode([]token.Token{token.Plain(model.TotalSymbols())})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnknownSymbol))
}

func TestDecode_PartialMarkerOnNonBigram(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	digit, err := meaning.Digit(3)
	require.NoError(t, err)
	sym, ok := model.SymbolFor(digit)
	require.True(t, ok)

	_, err = decoder.Decode([]token.Token{token.Before(sym)})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrMalformedTokenStream))
}

func TestDecode_PartialNextTokenIsNotABoundary(t *testing.T) {
	model := testModel(t)
	decoder := NewDecoder(model)

	markerSym, ok := model.SymbolFor(meaning.SpaceMarkerAt(0))
	require.True(t, ok)
	ca, err := meaning.Bigram('C', 'A')
	require.NoError(t, err)
	caSym, ok := model.SymbolFor(ca)
	require.True(t, ok)

	// The lookahead only honors plain space markers; a partial-marked token
	// after a marker leaves it a single space.
	decoded, err := decoder.Decode([]token.Token{token.Plain(markerSym), token.Before(caSym)})
	require.NoError(t, err)
	require.Equal(t, " C", decoded)
}

func TestDecodeDetail(t *testing.T) {
	model := testModel(t)
	encoder := NewEncoder(model)
	decoder := NewDecoder(model)

	tokens, err := encoder.Encode("CAT NAP. GO")
	require.NoError(t, err)

	details, err := decoder.DecodeDetail(tokens)
	require.NoError(t, err)

	// The consumed second boundary marker produces no record of its own.
	require.Len(t, details, len(tokens)-1)

	var sb strings.Builder
	for _, d := range details {
		sb.WriteString(d.Text)
	}
	decoded, err := decoder.Decode(tokens)
	require.NoError(t, err)
	require.Equal(t, decoded, sb.String())

	// The final-letter token of CAT carries its partial flag and resolved
	// synthetic bigram.
	final := details[1]
	require.Equal(t, token.PartialBefore, final.Token.Partial)
	require.Equal(t, meaning.KindBigram, final.Meaning.Kind())
	require.Equal(t, byte('T'), final.Meaning.First())
	require.Equal(t, "T", final.Text)

	// The boundary record carries the sentence separator.
	boundary := details[5]
	require.Equal(t, meaning.KindSpaceMarker, boundary.Meaning.Kind())
	require.Equal(t, ". ", boundary.Text)
}
