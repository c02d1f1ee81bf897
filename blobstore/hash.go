package blobstore

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSize is the length in bytes of a Hash.
const HashSize = sha256.Size

// Hash identifies a blob by the sha256 digest of its content.
type Hash [sha256.Size]byte

// HashOf computes the Hash of data.
func HashOf(data []byte) Hash {
	return sha256.Sum256(data)
}

// String returns the lowercase hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash decodes a hex-encoded Hash, as produced by String.
func ParseHash(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	if len(b) != len(h) {
		return Hash{}, &InvalidHashError{Value: s}
	}
	copy(h[:], b)
	return h, nil
}

// InvalidHashError is returned by ParseHash when s does not decode to a
// Hash of the correct length.
type InvalidHashError struct {
	Value string
}

func (e *InvalidHashError) Error() string {
	return "blobstore: invalid hash: " + e.Value
}
