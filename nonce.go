// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"encoding/hex"
	"fmt"
)

// NonceSize is the number of bytes in a nonce.
//
// The nonce size is part of the proof format.  Changing it invalidates every
// previously produced proof.
const NonceSize = 16

// MaxNonceStringSize is the maximum length of a nonce hex string.
const MaxNonceStringSize = NonceSize * 2

// Nonce is the value combined with a payload to produce a digest.  A nonce
// whose digest satisfies a cost is a proof of work for that payload and cost.
type Nonce [NonceSize]byte

// String returns the nonce as a hexadecimal string.
func (n Nonce) String() string {
	return hex.EncodeToString(n[:])
}

// CloneBytes returns a copy of the bytes which represent the nonce as a byte
// slice.
func (n *Nonce) CloneBytes() []byte {
	newNonce := make([]byte, NonceSize)
	copy(newNonce, n[:])

	return newNonce
}

// SetBytes sets the bytes which represent the nonce.  An error is returned if
// the number of bytes passed in is not NonceSize.
func (n *Nonce) SetBytes(newNonce []byte) error {
	nhlen := len(newNonce)
	if nhlen != NonceSize {
		str := fmt.Sprintf("invalid nonce length of %v, want %v", nhlen,
			NonceSize)
		return makeError(ErrNonceSize, str)
	}
	copy(n[:], newNonce)

	return nil
}

// IsEqual returns true if target is the same as the nonce.
func (n *Nonce) IsEqual(target *Nonce) bool {
	if n == nil && target == nil {
		return true
	}
	if n == nil || target == nil {
		return false
	}
	return *n == *target
}

// NewNonce returns a new Nonce from a byte slice.  An error is returned if the
// number of bytes passed in is not NonceSize.
func NewNonce(newNonce []byte) (*Nonce, error) {
	var n Nonce
	err := n.SetBytes(newNonce)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// NewNonceFromStr creates a Nonce from a hex string.
func NewNonceFromStr(nonce string) (*Nonce, error) {
	ret := new(Nonce)
	err := Decode(ret, nonce)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode decodes the hexadecimal string encoding of a Nonce to a destination.
// The string must encode exactly NonceSize bytes.
func Decode(dst *Nonce, src string) error {
	if len(src) != MaxNonceStringSize {
		str := fmt.Sprintf("nonce string length is %v, want %v", len(src),
			MaxNonceStringSize)
		return makeError(ErrNonceStrSize, str)
	}

	var decoded Nonce
	if _, err := hex.Decode(decoded[:], []byte(src)); err != nil {
		return err
	}
	*dst = decoded
	return nil
}
