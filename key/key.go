// Package key builds and queries the shared symbol table of the bigraph
// codec.
//
// A Model is the seeded, shuffled bijection between symbol indices and
// meanings that encoder and decoder must agree on. Two parties holding the
// same (recipient, seed) pair always rebuild an identical Model, so the seed
// alone is the shared secret; the full table never has to travel.
//
// Models are immutable after construction and safe to share across
// concurrent encode and decode operations.
package key

import (
	"fmt"
	"math/rand"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/internal/hash"
	"github.com/arloliu/bigraph/meaning"
	"github.com/arloliu/bigraph/token"
)

// Model is the bijective mapping between symbol indices and meanings.
type Model struct {
	recipient string
	seed      int64
	id        uint64

	symbolToMeaning []meaning.Meaning
	meaningToSymbol map[meaning.Meaning]int
}

// Build constructs the symbol table for a recipient from a seed.
//
// The full meaning universe is enumerated in its canonical order and shuffled
// with a Fisher-Yates pass driven by a PRNG seeded from the given seed; a
// symbol's index is its position in the shuffled list. The construction is
// fully deterministic: the same (recipient, seed) pair always yields an
// identical table.
//
// Parameters:
//   - recipient: Label identifying who the key is for (part of the key
//     fingerprint, not the mapping)
//   - seed: Shared secret driving the shuffle
//
// Returns:
//   - *Model: Immutable symbol table
//   - error: Universe construction error (defensive; the built-in universe
//     always satisfies the range and distinctness checks)
func Build(recipient string, seed int64) (*Model, error) {
	return BuildWithUniverse(recipient, seed, meaning.Universe())
}

// BuildWithUniverse constructs a symbol table over an explicit meaning
// universe.
//
// This is the reconstruction entry point for persistence collaborators: a
// stored key only needs to carry its seed and the universe to rebuild an
// equivalent Model. The universe must contain no duplicate meanings and must
// stay strictly below the wire format's partial-after offset.
//
// Returns:
//   - *Model: Immutable symbol table
//   - error: ErrSymbolRangeExceeded if the universe is too large for the
//     wire encoding, ErrDuplicateMeaning if it contains a meaning twice
func BuildWithUniverse(recipient string, seed int64, universe []meaning.Meaning) (*Model, error) {
	if err := token.CheckSymbolRange(len(universe)); err != nil {
		return nil, err
	}

	table := make([]meaning.Meaning, len(universe))
	copy(table, universe)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})

	reverse := make(map[meaning.Meaning]int, len(table))
	for idx, m := range table {
		if _, exists := reverse[m]; exists {
			return nil, fmt.Errorf("%w: %s", errs.ErrDuplicateMeaning, m)
		}
		reverse[m] = idx
	}

	return &Model{
		recipient:       recipient,
		seed:            seed,
		id:              hash.KeyID(recipient, seed),
		symbolToMeaning: table,
		meaningToSymbol: reverse,
	}, nil
}

// Recipient returns the label the key was built for.
func (m *Model) Recipient() string {
	return m.recipient
}

// Seed returns the seed the table was shuffled with.
func (m *Model) Seed() int64 {
	return m.seed
}

// ID returns the xxHash64 fingerprint of the (recipient, seed) pair.
func (m *Model) ID() uint64 {
	return m.id
}

// TotalSymbols returns the size of the symbol table.
func (m *Model) TotalSymbols() int {
	return len(m.symbolToMeaning)
}

// SymbolFor looks up the symbol index assigned to a meaning.
func (m *Model) SymbolFor(mn meaning.Meaning) (int, bool) {
	idx, ok := m.meaningToSymbol[mn]

	return idx, ok
}

// MeaningFor looks up the meaning assigned to a symbol index.
func (m *Model) MeaningFor(symbol int) (meaning.Meaning, bool) {
	if symbol < 0 || symbol >= len(m.symbolToMeaning) {
		return meaning.Meaning{}, false
	}

	return m.symbolToMeaning[symbol], true
}

// Symbols returns a copy of the symbol table in index order.
//
// The copy keeps the Model immutable; callers may reorder or mutate the
// returned slice freely.
func (m *Model) Symbols() []meaning.Meaning {
	out := make([]meaning.Meaning, len(m.symbolToMeaning))
	copy(out, m.symbolToMeaning)

	return out
}
