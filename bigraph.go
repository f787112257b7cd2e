// Package bigraph implements a reversible bigram substitution codec: text
// maps to a stream of integer symbol tokens and back through a per-recipient
// shuffled symbol table.
//
// The symbol table (the "key") assigns a random symbol index to each of 718
// meanings: the 676 two-letter bigrams, positive and negative digits, a
// multiply/divide operator marker, reserved punctuation, and seven rare
// bigrams repurposed as rotating space markers. The table is a seeded
// Fisher-Yates shuffle, so two parties sharing a (recipient, seed) pair
// rebuild identical tables without ever transmitting one.
//
// # Security Model
//
// This is not a cryptographically secure cipher. The shuffle is a plain
// seeded PRNG permutation; key secrecy is the only protection. There are no
// confidentiality, integrity, or authentication guarantees.
//
// # Basic Usage
//
// Encoding and decoding a message:
//
//	import "github.com/arloliu/bigraph"
//
//	// Both parties derive the same key from the shared seed
//	model, _ := bigraph.GenerateKeyWithSeed("alice", 42)
//
//	tokens, _ := bigraph.Encode(model, "HELLO WORLD. SEE YOU SOON!")
//	text, _ := bigraph.Decode(model, tokens)
//
// Messages travel as comma-separated integers:
//
//	wire, _ := bigraph.EncodeToString(model, "HELLO WORLD")
//	text, _ := bigraph.DecodeString(model, wire)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the key, codec
// and token packages, simplifying the most common use cases. For finer
// control (math expressions, per-token decode diagnostics, key persistence,
// glyph rendering), use those packages directly.
package bigraph

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/arloliu/bigraph/codec"
	"github.com/arloliu/bigraph/key"
	"github.com/arloliu/bigraph/token"
)

// GenerateKey builds a key model for a recipient with a fresh random seed.
//
// The seed is drawn from the operating system's entropy source; retrieve it
// with the model's Seed method and share it with the recipient, since the
// seed is the only way to rebuild the table.
func GenerateKey(recipient string) (*key.Model, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("draw key seed: %w", err)
	}

	return key.Build(recipient, int64(binary.LittleEndian.Uint64(buf[:])))
}

// GenerateKeyWithSeed builds a key model deterministically from a shared
// seed. The same (recipient, seed) pair always yields an identical model.
func GenerateKeyWithSeed(recipient string, seed int64) (*key.Model, error) {
	return key.Build(recipient, seed)
}

// Encode converts text into a token stream under the given key.
func Encode(model *key.Model, text string) ([]token.Token, error) {
	return codec.NewEncoder(model).Encode(text)
}

// Decode reconstructs text from a token stream under the given key.
func Decode(model *key.Model, tokens []token.Token) (string, error) {
	return codec.NewDecoder(model).Decode(tokens)
}

// EncodeToString encodes text and renders the stream in the comma-separated
// integer wire format.
func EncodeToString(model *key.Model, text string) (string, error) {
	tokens, err := Encode(model, text)
	if err != nil {
		return "", err
	}

	return token.Format(tokens), nil
}

// DecodeString parses a wire-format stream and decodes it.
func DecodeString(model *key.Model, wire string) (string, error) {
	tokens, err := token.Parse(wire)
	if err != nil {
		return "", err
	}

	return Decode(model, tokens)
}
