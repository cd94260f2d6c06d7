package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// DatasetHash identifies uploaded content (bytes + declared format).
// Used as the analysis cache key.
type DatasetHash Hash

func (h DatasetHash) String() string { return Hash(h).String() }

// NewDatasetHash hashes raw file content together with its declared format so
// the same bytes uploaded under a different extension never collide.
func NewDatasetHash(format string, content []byte) DatasetHash {
	data := make([]byte, 0, len(format)+1+len(content))
	data = append(data, format...)
	data = append(data, 0)
	data = append(data, content...)
	return DatasetHash(NewHash(data))
}
