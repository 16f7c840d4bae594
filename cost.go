// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// LeadingZeroBits returns the number of consecutive zero bits starting from
// the most significant bit of the first byte of the digest.
//
// Scanning stops at the first non-zero byte, so at most one byte beyond the
// leading run of zero bytes is examined.
func LeadingZeroBits(digest *Digest) uint32 {
	var count uint32
	for _, b := range digest {
		if b != 0 {
			return count + uint32(bits.LeadingZeros8(b))
		}
		count += 8
	}
	return count
}

// Satisfies returns whether or not the digest has at least cost leading zero
// bits.
//
// A cost of zero is always satisfied and a cost larger than MaxCost can never
// be satisfied.
func Satisfies(digest *Digest, cost uint32) bool {
	if cost == 0 {
		return true
	}
	if cost > MaxCost {
		return false
	}
	return LeadingZeroBits(digest) >= cost
}

// CheckCost returns an error of kind ErrCostTooHigh when the provided cost can
// never be satisfied.
//
// The search functions tolerate such costs by exhausting their meter, so this
// is only useful for callers that would rather fail fast.
func CheckCost(cost uint32) error {
	if cost > MaxCost {
		str := fmt.Sprintf("cost of %d exceeds the digest size of %d bits",
			cost, MaxCost)
		return makeError(ErrCostTooHigh, str)
	}
	return nil
}

// ExpectedAttempts returns the mean number of attempts a search needs to find
// a nonce for the provided cost.
func ExpectedAttempts(cost uint32) float64 {
	return math.Exp2(float64(cost))
}

// MeterForDuration converts a hash rate and a wall clock budget into a meter
// suitable for passing to the search functions.  The result saturates at the
// maximum uint32 value.
func MeterForDuration(hashesPerSec float64, d time.Duration) uint32 {
	if hashesPerSec <= 0 || d <= 0 || math.IsNaN(hashesPerSec) {
		return 0
	}
	attempts := hashesPerSec * d.Seconds()
	if attempts >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(attempts)
}
