package token

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bigraph/errs"
)

func TestFormat(t *testing.T) {
	require.Equal(t, "", Format(nil))
	require.Equal(t, "7", Format([]Token{Plain(7)}))
	require.Equal(t, "7,-3,10005", Format([]Token{Plain(7), Before(2), After(5)}))
}

func TestParse(t *testing.T) {
	t.Run("plain stream", func(t *testing.T) {
		tokens, err := Parse("7,-3,10005")
		require.NoError(t, err)
		require.Equal(t, []Token{Plain(7), Before(2), After(5)}, tokens)
	})

	t.Run("blank segments and whitespace ignored", func(t *testing.T) {
		tokens, err := Parse(" 7 , , -3 ,\n10005,")
		require.NoError(t, err)
		require.Equal(t, []Token{Plain(7), Before(2), After(5)}, tokens)
	})

	t.Run("empty input", func(t *testing.T) {
		tokens, err := Parse("")
		require.NoError(t, err)
		require.Empty(t, tokens)
	})

	t.Run("non-integer segment", func(t *testing.T) {
		_, err := Parse("7,zebra,3")
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrMalformedTokenStream))
	})
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	tokens := []Token{Plain(1), Before(2), After(3), Plain(700)}

	require.NoError(t, WriteFile(path, tokens))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, tokens, loaded)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
