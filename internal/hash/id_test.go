package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestKeyID(t *testing.T) {
	id := KeyID("alice", 42)

	// Deterministic across calls.
	assert.Equal(t, id, KeyID("alice", 42))

	// Sensitive to both the recipient and the seed.
	assert.NotEqual(t, id, KeyID("bob", 42))
	assert.NotEqual(t, id, KeyID("alice", 43))

	// The seed participates as raw bytes, not string concatenation, so a
	// recipient ending in digits cannot collide with a shifted seed.
	assert.NotEqual(t, KeyID("alice4", 2), KeyID("alice", 42))
}

func BenchmarkKeyID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		KeyID("alice", 42)
	}
}
