package bigraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	model, err := GenerateKeyWithSeed("alice", 42)
	require.NoError(t, err)

	tokens, err := Encode(model, "HELLO WORLD")
	require.NoError(t, err)

	text, err := Decode(model, tokens)
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", text)
}

func TestWireRoundTrip(t *testing.T) {
	model, err := GenerateKeyWithSeed("alice", 42)
	require.NoError(t, err)

	wire, err := EncodeToString(model, "MEET AT NOON. BRING 2 KEYS!")
	require.NoError(t, err)

	text, err := DecodeString(model, wire)
	require.NoError(t, err)
	require.Contains(t, text, "MEET AT NOON")
	require.Contains(t, text, ". ")
	require.Contains(t, text, "2")
}

func TestSharedSeedDecodesAcrossParties(t *testing.T) {
	sender, err := GenerateKeyWithSeed("bob", 1234)
	require.NoError(t, err)
	receiver, err := GenerateKeyWithSeed("bob", 1234)
	require.NoError(t, err)

	wire, err := EncodeToString(sender, "THE CAT SAT")
	require.NoError(t, err)

	text, err := DecodeString(receiver, wire)
	require.NoError(t, err)
	require.Contains(t, text, "CAT")
	require.Contains(t, text, "SAT")
}

func TestGenerateKey_RandomSeeds(t *testing.T) {
	first, err := GenerateKey("alice")
	require.NoError(t, err)
	second, err := GenerateKey("alice")
	require.NoError(t, err)

	// Two generated keys virtually never share a seed.
	require.NotEqual(t, first.Seed(), second.Seed())
}

func TestDecodeString_Malformed(t *testing.T) {
	model, err := GenerateKeyWithSeed("alice", 42)
	require.NoError(t, err)

	_, err = DecodeString(model, "12,potato,9")
	require.Error(t, err)
}
