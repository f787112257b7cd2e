package meaning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors_Validation(t *testing.T) {
	_, err := Bigram('A', '1')
	require.Error(t, err)
	_, err = Bigram('a', 'b')
	require.Error(t, err)
	_, err = Digit(10)
	require.Error(t, err)
	_, err = NegDigit(-1)
	require.Error(t, err)
	_, err = Special('a')
	require.Error(t, err)

	m, err := Bigram('H', 'E')
	require.NoError(t, err)
	require.True(t, m.IsBigram())
	require.Equal(t, byte('H'), m.First())
	require.Equal(t, byte('E'), m.Second())
}

func TestAccessors_WrongKind(t *testing.T) {
	d, err := Digit(7)
	require.NoError(t, err)
	require.Equal(t, 7, d.Digit())
	require.Zero(t, d.First())
	require.Zero(t, d.Char())
	require.False(t, d.IsBigram())

	require.Equal(t, -1, MulDiv().Digit())
}

func TestSpaceMarkerAt_Wraps(t *testing.T) {
	require.Equal(t, SpaceMarkerAt(0), SpaceMarkerAt(SpaceMarkerCount))
	require.Equal(t, SpaceMarkerAt(3), SpaceMarkerAt(3+2*SpaceMarkerCount))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Bigram", KindBigram.String())
	require.Equal(t, "SpaceMarker", KindSpaceMarker.String())
	require.Equal(t, "Unknown", Kind(0xFF).String())
}

func TestMeaningString(t *testing.T) {
	m, err := Bigram('H', 'E')
	require.NoError(t, err)
	require.Equal(t, "Bigram(HE)", m.String())

	n, err := NegDigit(4)
	require.NoError(t, err)
	require.Equal(t, "NegDigit(4)", n.String())

	require.Equal(t, "MulDiv", MulDiv().String())
}
