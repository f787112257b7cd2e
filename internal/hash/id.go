package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// KeyID computes the fingerprint of a (recipient, seed) pair.
//
// The fingerprint identifies a key in file names and diagnostics; it carries
// no secrecy (the seed itself is the shared secret).
func KeyID(recipient string, seed int64) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(recipient)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}
