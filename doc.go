// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package pow implements a hash-cost proof of work that lets a service demand
verifiable computational work from a caller before honoring a request, without
keeping any per-caller state.

Given an arbitrary payload and a cost, a proof is a nonce such that the digest
of the nonce immediately followed by the payload has at least cost leading zero
bits.  Finding a proof takes 2^cost attempts on average while checking one takes
a single digest.

# Proof format

  - A nonce is NonceSize (16) raw bytes
  - The digest is the DigestSize (32) byte output of the hash function applied
    to nonce || payload, with no separator or length prefix
  - The default hash function is BLAKE3; BLAKE-256 and SHA-256 are also
    provided, and any HashFunc may be supplied

Changing the nonce size or the hash function invalidates existing proofs.
Textual encodings of nonces, such as the hex provided by Nonce.String and
NewNonceFromStr, are conveniences layered on top of the raw bytes.

# Searching

Search tries up to a caller-provided number of random nonces (the meter) on the
calling goroutine.  Solver spreads the same meter over several goroutines that
each draw nonces from their own random source and stop as soon as any of them
succeeds.

Running out of attempts is an expected outcome and is reported by a false
second return value rather than an error.  The meter is the only bound on the
work performed, so callers that need a wall clock limit should derive the meter
from a measured hash rate, for example with MeterForDuration.

# Verifying

Verify and VerifyWith report whether a nonce is a valid proof.  CheckProof
returns an error describing why a proof was rejected.

# Errors

Errors returned by this package are of type pow.Error.  This allows the caller
to differentiate between errors further up the call stack through type
assertions.  In addition, callers can programmatically determine the specific
kind of error by using errors.Is with one of the ErrorKind constants.
*/
package pow
