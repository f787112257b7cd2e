package keyfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arloliu/bigraph/compress"
	"github.com/arloliu/bigraph/errs"
	"github.com/arloliu/bigraph/internal/options"
	"github.com/arloliu/bigraph/key"
)

// fileMagic opens every key file; the byte after it records the payload's
// compression type.
const fileMagic = "BGK1"

// Extension is the file extension of stored keys.
const Extension = ".key"

// Store reads and writes key files under a directory.
type Store struct {
	dir         string
	compression compress.Type
}

// StoreOption configures a Store.
type StoreOption = options.Option[*Store]

// WithDirectory sets the directory key files live in (default "keys").
func WithDirectory(dir string) StoreOption {
	return options.New(func(s *Store) error {
		if dir == "" {
			return fmt.Errorf("key directory must not be empty")
		}
		s.dir = dir

		return nil
	})
}

// WithCompression sets the payload compression for saved keys
// (default Zstd).
func WithCompression(t compress.Type) StoreOption {
	return options.New(func(s *Store) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		s.compression = t

		return nil
	})
}

// NewStore creates a key store, creating its directory if needed.
func NewStore(opts ...StoreOption) (*Store, error) {
	s := &Store{
		dir:         "keys",
		compression: compress.TypeZstd,
	}

	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create key directory: %w", err)
	}

	return s, nil
}

// Dir returns the store's directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save renders and writes a key model into the store.
//
// The file name derives from the sanitized recipient and the key
// fingerprint, so saving the same (recipient, seed) pair twice overwrites
// the identical earlier file instead of accumulating copies.
//
// Returns:
//   - string: Path of the written key file
//   - error: Rendering, marshaling, compression or filesystem error
func (s *Store) Save(model *key.Model) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%016x%s", sanitizeRecipient(model.Recipient()), model.ID(), Extension))
	if err := s.Export(model, path); err != nil {
		return "", err
	}

	return path, nil
}

// Export writes a key model to an explicit path outside the store's naming
// scheme, e.g. for handing a key file to its recipient.
func (s *Store) Export(model *key.Model, path string) error {
	record, err := NewRecord(model)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal key record: %w", err)
	}

	codec, err := compress.GetCodec(s.compression)
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress key record: %w", err)
	}

	data := make([]byte, 0, len(fileMagic)+1+len(compressed))
	data = append(data, fileMagic...)
	data = append(data, byte(s.compression))
	data = append(data, compressed...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write key file: %w", err)
	}

	return nil
}

// Load reads, decompresses and validates a key file from any path.
//
// Returns:
//   - *Record: The validated key record
//   - error: ErrKeyNotFound if the file does not exist, ErrInvalidKeyFile
//     for a bad magic number, unknown compression type, or a record that
//     fails validation
func (s *Store) Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrKeyNotFound, path)
		}

		return nil, fmt.Errorf("read key file: %w", err)
	}

	if len(data) < len(fileMagic)+1 || string(data[:len(fileMagic)]) != fileMagic {
		return nil, fmt.Errorf("%w: %s has no key-file magic", errs.ErrInvalidKeyFile, path)
	}

	codec, err := compress.GetCodec(compress.Type(data[len(fileMagic)]))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyFile, err)
	}

	payload, err := codec.Decompress(data[len(fileMagic)+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyFile, err)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidKeyFile, err)
	}

	if err := record.validate(); err != nil {
		return nil, err
	}

	return &record, nil
}

// LoadModel is a convenience wrapper that loads a key file and rebuilds its
// key model in one step.
func (s *Store) LoadModel(path string) (*key.Model, error) {
	record, err := s.Load(path)
	if err != nil {
		return nil, err
	}

	return record.Model()
}

// Info summarizes one stored key without its symbol table or glyphs.
type Info struct {
	Path      string
	Recipient string
	Created   string
	Version   string
	Seed      int64
}

// List enumerates the readable key files in the store's directory, sorted
// by file name. Files that fail to load are skipped rather than failing the
// whole listing.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read key directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		record, err := s.Load(path)
		if err != nil {
			continue
		}

		infos = append(infos, Info{
			Path:      path,
			Recipient: record.Recipient,
			Created:   record.Created.Format("2006-01-02 15:04:05"),
			Version:   record.Version,
			Seed:      record.Seed,
		})
	}

	return infos, nil
}

// sanitizeRecipient makes a recipient label safe for use in a file name.
func sanitizeRecipient(recipient string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		default:
			return r
		}
	}, recipient)
}
