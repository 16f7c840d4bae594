// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/decred/dcrd/crypto/rand"
)

// ctxCheckInterval is the number of attempts between checks of the search
// context for cancellation.  The stop flag shared by parallel workers is
// checked on every attempt.
const ctxCheckInterval = 1 << 10

// newNonceSource returns a private random source for a single search loop.
//
// The shared package-level generator is used instead when a private one can't
// be seeded.  It is safe for concurrent access, only slower.
func newNonceSource() io.Reader {
	prng, err := rand.NewPRNG()
	if err != nil {
		log.Warnf("Unable to seed private nonce generator, falling back "+
			"to the shared generator: %v", err)
		return rand.Reader()
	}
	return prng
}

// searchLoop draws up to meter uniformly random nonces from src and returns
// the first one for which the digest of the nonce followed by the payload
// satisfies the cost.  It also returns the number of attempts performed.
//
// The loop returns early without a result when the context is cancelled or
// the optional stop flag is set.
func searchLoop(ctx context.Context, hashFunc HashFunc, src io.Reader,
	payload []byte, cost, meter uint32, stop *atomic.Bool) (Nonce, bool, uint64) {

	var nonce Nonce
	for attempt := uint32(0); attempt < meter; attempt++ {
		if attempt%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return Nonce{}, false, uint64(attempt)
			default:
			}
		}
		if stop != nil && stop.Load() {
			return Nonce{}, false, uint64(attempt)
		}

		if _, err := io.ReadFull(src, nonce[:]); err != nil {
			log.Errorf("Unexpected error while generating random nonce: %v",
				err)
			return Nonce{}, false, uint64(attempt)
		}

		digest := hashFunc(&nonce, payload)
		if Satisfies(&digest, cost) {
			return nonce, true, uint64(attempt) + 1
		}
	}

	return Nonce{}, false, uint64(meter)
}

// Search attempts to find a nonce such that the BLAKE3 digest of the nonce
// followed by the payload has at least cost leading zero bits.  At most meter
// random nonces are tried.
//
// The second return value is false when no such nonce was found within the
// meter.  This is an expected outcome rather than an error, and it is
// guaranteed for a meter of zero or a cost larger than MaxCost.
//
// The search runs to completion on the calling goroutine.  See Solver for a
// parallel version.
func Search(payload []byte, cost, meter uint32) (Nonce, bool) {
	return SearchWith(context.Background(), Blake3, payload, cost, meter)
}

// SearchWith is identical to Search except it uses the provided hash function
// and returns early without a result when the context is cancelled.  A nil
// hash function selects the default.
func SearchWith(ctx context.Context, hashFunc HashFunc, payload []byte,
	cost, meter uint32) (Nonce, bool) {

	if hashFunc == nil {
		hashFunc = Hash
	}

	nonce, found, attempts := searchLoop(ctx, hashFunc, newNonceSource(),
		payload, cost, meter, nil)
	if !found {
		log.Tracef("No nonce for cost %d found after %d %s", cost, attempts,
			pickNoun(attempts, "attempt", "attempts"))
		return Nonce{}, false
	}

	log.Tracef("Found nonce %v for cost %d after %d %s", nonce, cost,
		attempts, pickNoun(attempts, "attempt", "attempts"))
	return nonce, true
}
