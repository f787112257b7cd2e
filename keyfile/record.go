// Package keyfile persists key models to disk and loads them back.
//
// A key file is a small binary envelope (magic number plus compression
// type) around a JSON record carrying the recipient, creation time, seed,
// the full symbol table in canonical meaning codes, and one rendered SVG
// glyph per symbol. The codec core never depends on this package; it only
// needs a key.Model, which a record rebuilds from its seed.
package keyfile

import (
	"fmt"
	"time"

	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/glyph"
	"github.com/arloliu/bigraph/key"
	"github.com/arloliu/bigraph/meaning"
)

// RecordVersion is the current key-file record version tag.
const RecordVersion = "1"

// Record is the persisted form of a key.
type Record struct {
	Version   string    `json:"version"`
	Recipient string    `json:"recipient"`
	Created   time.Time `json:"created"`
	Seed      int64     `json:"seed"`

	// Symbols holds the canonical meaning code of every symbol, indexed by
	// symbol number. It is redundant with Seed (the table rebuilds from the
	// seed alone) and serves as an integrity check on load.
	Symbols []string `json:"symbols"`

	// Glyphs holds the rendered SVG glyph of every symbol, indexed by
	// symbol number.
	Glyphs []string `json:"glyphs"`
}

// NewRecord builds a record for a key model, rendering one glyph per symbol
// with the model's own seed.
func NewRecord(model *key.Model) (*Record, error) {
	renderer, err := glyph.NewRenderer(model.Seed())
	if err != nil {
		return nil, err
	}

	symbols := model.Symbols()
	codes := make([]string, len(symbols))
	for i, m := range symbols {
		codes[i] = m.Code()
	}

	return &Record{
		Version:   RecordVersion,
		Recipient: model.Recipient(),
		Created:   time.Now().UTC().Truncate(time.Second),
		Seed:      model.Seed(),
		Symbols:   codes,
		Glyphs:    renderer.RenderAll(len(symbols)),
	}, nil
}

// Model rebuilds the key model the record was created from.
func (r *Record) Model() (*key.Model, error) {
	return key.Build(r.Recipient, r.Seed)
}

// Glyph returns the rendered glyph for a symbol index.
func (r *Record) Glyph(symbol int) (string, bool) {
	if symbol < 0 || symbol >= len(r.Glyphs) {
		return "", false
	}

	return r.Glyphs[symbol], true
}

// validate checks the record's internal consistency: a known version, a
// symbol table that parses and matches a rebuild from the seed, and one
// glyph per symbol.
func (r *Record) validate() error {
	if r.Version != RecordVersion {
		return fmt.Errorf("%w: unsupported version %q", errs.ErrInvalidKeyFile, r.Version)
	}

	model, err := key.Build(r.Recipient, r.Seed)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrInvalidKeyFile, err)
	}

	if len(r.Symbols) != model.TotalSymbols() {
		return fmt.Errorf("%w: %d symbols, expected %d", errs.ErrInvalidKeyFile, len(r.Symbols), model.TotalSymbols())
	}
	if len(r.Glyphs) != len(r.Symbols) {
		return fmt.Errorf("%w: %d glyphs for %d symbols", errs.ErrInvalidKeyFile, len(r.Glyphs), len(r.Symbols))
	}

	for i, code := range r.Symbols {
		m, err := meaning.Parse(code)
		if err != nil {
			return fmt.Errorf("%w: symbol %d: %v", errs.ErrInvalidKeyFile, i, err)
		}

		rebuilt, ok := model.MeaningFor(i)
		if !ok || rebuilt != m {
			return fmt.Errorf("%w: symbol %d does not match a rebuild from seed %d", errs.ErrInvalidKeyFile, i, r.Seed)
		}
	}

	return nil
}
