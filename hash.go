// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/decred/dcrd/crypto/blake256"
	"lukechampine.com/blake3"
)

const (
	// DigestSize is the size of the digest produced by every supported hash
	// function.
	DigestSize = 32

	// MaxCost is the largest cost that can ever be satisfied since it is the
	// number of bits in a digest.
	MaxCost = DigestSize * 8
)

// Digest is the output of a hash function applied to a nonce followed by a
// payload.
type Digest [DigestSize]byte

// String returns the digest as a hexadecimal string.
func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// HashFunc computes the digest of the provided nonce immediately followed by
// the payload.  There is no separator or length prefix between the two.
//
// Any function that produces a DigestSize byte digest with the usual
// cryptographic properties may be used.  Note that swapping the function
// changes which nonces are valid proofs.
type HashFunc func(nonce *Nonce, payload []byte) Digest

// Blake3 computes BLAKE3(nonce || payload).  It is the default hash function.
func Blake3(nonce *Nonce, payload []byte) Digest {
	hasher := blake3.New(DigestSize, nil)
	hasher.Write(nonce[:])
	hasher.Write(payload)

	var digest Digest
	hasher.Sum(digest[:0])
	return digest
}

// Blake256 computes BLAKE-256(nonce || payload).
func Blake256(nonce *Nonce, payload []byte) Digest {
	hasher := blake256.NewHasher256()
	hasher.WriteBytes(nonce[:])
	hasher.WriteBytes(payload)
	return Digest(hasher.Sum256())
}

// SHA256 computes SHA-256(nonce || payload).
func SHA256(nonce *Nonce, payload []byte) Digest {
	hasher := sha256.New()
	hasher.Write(nonce[:])
	hasher.Write(payload)

	var digest Digest
	hasher.Sum(digest[:0])
	return digest
}

// Hash computes the digest of the nonce followed by the payload with the
// default hash function.
func Hash(nonce *Nonce, payload []byte) Digest {
	return Blake3(nonce, payload)
}

// hashFuncs maps the names accepted by HashFuncByName to their functions.
var hashFuncs = map[string]HashFunc{
	"blake3":   Blake3,
	"blake256": Blake256,
	"sha256":   SHA256,
}

// HashFuncNames returns the names accepted by HashFuncByName.
func HashFuncNames() []string {
	return []string{"blake3", "blake256", "sha256"}
}

// HashFuncByName returns the hash function associated with the provided
// case-insensitive name.  An error of kind ErrUnknownHashFunc is returned when
// the name is not recognized.
func HashFuncByName(name string) (HashFunc, error) {
	fn, ok := hashFuncs[strings.ToLower(name)]
	if !ok {
		str := fmt.Sprintf("unknown hash function %q (supported: %s)", name,
			strings.Join(HashFuncNames(), ", "))
		return nil, makeError(ErrUnknownHashFunc, str)
	}
	return fn, nil
}
