// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import "fmt"

// Verify returns whether or not the nonce is a proof of work of at least the
// provided cost for the payload using the default hash function.
//
// Verification computes a single digest, so it is cheap compared to the search
// that produced the nonce and may be performed by any party.
func Verify(payload []byte, nonce *Nonce, cost uint32) bool {
	return VerifyWith(Hash, payload, nonce, cost)
}

// VerifyWith is identical to Verify except it uses the provided hash function.
func VerifyWith(hashFunc HashFunc, payload []byte, nonce *Nonce, cost uint32) bool {
	digest := hashFunc(nonce, payload)
	return Satisfies(&digest, cost)
}

// CheckProof ensures the nonce is a proof of work of at least the provided
// cost for the payload.  Unlike VerifyWith, the returned error describes why a
// proof was rejected.
//
// An error of kind ErrCostTooHigh is returned for a cost that can never be
// satisfied and ErrInsufficientWork for a digest with too few leading zero
// bits.
func CheckProof(hashFunc HashFunc, payload []byte, nonce *Nonce, cost uint32) error {
	if err := CheckCost(cost); err != nil {
		return err
	}

	digest := hashFunc(nonce, payload)
	if !Satisfies(&digest, cost) {
		str := fmt.Sprintf("digest %v of nonce %v has %d leading zero bits "+
			"which is less than the required %d", digest, nonce,
			LeadingZeroBits(&digest), cost)
		return makeError(ErrInsufficientWork, str)
	}

	return nil
}
