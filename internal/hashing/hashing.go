// Package hashing derives stable content digests for the data model.
//
// Parts are combined with an 8-byte big-endian length prefix each, so no
// choice of part content can make two different part sequences collide on
// the framing (e.g. ["a|b", "c"] vs ["a", "b|c"]). Digests are lowercase hex.
package hashing

import (
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"sort"

	"github.com/zeebo/blake3"
)

// Algorithm names a digest function
type Algorithm string

const (
	SHA1   Algorithm = "sha1"   // 40 hex chars; used for all model content hashes
	BLAKE3 Algorithm = "blake3" // 64 hex chars; used for cache keys
)

// Default is the algorithm behind Sum and Unordered.
const Default = SHA1

// New returns a fresh hash.Hash for the algorithm. Unrecognised values
// hash as Default.
func (a Algorithm) New() hash.Hash {
	switch a {
	case BLAKE3:
		return blake3.New()
	default:
		return sha1.New()
	}
}

// Combine digests the length-prefixed concatenation of parts
func Combine(alg Algorithm, parts ...string) string {
	h := alg.New()
	var size [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(size[:], uint64(len(p)))
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Sum is Combine with the Default algorithm
func Sum(parts ...string) string {
	return Combine(Default, parts...)
}

// Unordered digests parts as a multiset: the result does not depend on the
// order of parts. The input slice is not modified.
func Unordered(parts []string) string {
	sorted := make([]string, len(parts))
	copy(sorted, parts)
	sort.Strings(sorted)
	return Sum(sorted...)
}
