// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"errors"
	"math"
	"testing"
	"time"
)

// digestWithPrefix returns a digest that starts with the provided bytes and is
// zero everywhere else.
func digestWithPrefix(prefix ...byte) *Digest {
	var digest Digest
	copy(digest[:], prefix)
	return &digest
}

// TestLeadingZeroBits ensures the leading zero bits of digests are counted
// correctly, including the boundaries of the digest.
func TestLeadingZeroBits(t *testing.T) {
	tests := []struct {
		name   string  // test description
		digest *Digest // digest to count
		want   uint32  // expected number of leading zero bits
	}{{
		name:   "all zero",
		digest: digestWithPrefix(),
		want:   256,
	}, {
		name:   "high bit set",
		digest: digestWithPrefix(0x80),
		want:   0,
	}, {
		name:   "all bits set",
		digest: digestWithPrefix(0xff, 0xff),
		want:   0,
	}, {
		name:   "0x0f",
		digest: digestWithPrefix(0x0f),
		want:   4,
	}, {
		name:   "0x01",
		digest: digestWithPrefix(0x01),
		want:   7,
	}, {
		name:   "0x00 0x01",
		digest: digestWithPrefix(0x00, 0x01),
		want:   15,
	}, {
		name:   "0x00 0x00 0xff",
		digest: digestWithPrefix(0x00, 0x00, 0xff),
		want:   16,
	}, {
		name:   "zero byte followed by 0x20 and set bits",
		digest: digestWithPrefix(0x00, 0x20, 0xff),
		want:   10,
	}, {
		name: "only the final bit set",
		digest: func() *Digest {
			d := digestWithPrefix()
			d[DigestSize-1] = 0x01
			return d
		}(),
		want: 255,
	}}

	for _, test := range tests {
		got := LeadingZeroBits(test.digest)
		if got != test.want {
			t.Errorf("%q: mismatched result -- got %d, want %d", test.name,
				got, test.want)
			continue
		}
	}
}

// TestSatisfies ensures the cost predicate accepts and rejects digests
// according to their number of leading zero bits and handles the cost
// boundaries.
func TestSatisfies(t *testing.T) {
	tests := []struct {
		name   string  // test description
		digest *Digest // digest to test
		cost   uint32  // cost to test against
		want   bool    // expected result
	}{{
		name:   "all zero, cost 0",
		digest: digestWithPrefix(),
		cost:   0,
		want:   true,
	}, {
		name:   "all zero, cost 1",
		digest: digestWithPrefix(),
		cost:   1,
		want:   true,
	}, {
		name:   "all zero, max cost",
		digest: digestWithPrefix(),
		cost:   MaxCost,
		want:   true,
	}, {
		name:   "all zero, max cost + 1",
		digest: digestWithPrefix(),
		cost:   MaxCost + 1,
		want:   false,
	}, {
		name:   "all zero, max uint32 cost",
		digest: digestWithPrefix(),
		cost:   math.MaxUint32,
		want:   false,
	}, {
		name:   "0x80, cost 0",
		digest: digestWithPrefix(0x80),
		cost:   0,
		want:   true,
	}, {
		name:   "0x80, cost 1",
		digest: digestWithPrefix(0x80),
		cost:   1,
		want:   false,
	}, {
		name:   "0x80, cost 8",
		digest: digestWithPrefix(0x80),
		cost:   8,
		want:   false,
	}, {
		name:   "0x00 0x01, cost 15",
		digest: digestWithPrefix(0x00, 0x01),
		cost:   15,
		want:   true,
	}, {
		name:   "0x00 0x01, cost 16",
		digest: digestWithPrefix(0x00, 0x01),
		cost:   16,
		want:   false,
	}, {
		name:   "0x00 0x00 0xff, cost 16",
		digest: digestWithPrefix(0x00, 0x00, 0xff),
		cost:   16,
		want:   true,
	}, {
		name:   "0x00 0x00 0xff, cost 17",
		digest: digestWithPrefix(0x00, 0x00, 0xff),
		cost:   17,
		want:   false,
	}}

	for _, test := range tests {
		got := Satisfies(test.digest, test.cost)
		if got != test.want {
			t.Errorf("%q: mismatched result -- got %v, want %v", test.name,
				got, test.want)
			continue
		}
	}
}

// TestSatisfiesMonotonic ensures every digest that satisfies a cost also
// satisfies all lower costs and that the highest satisfied cost is exactly the
// number of leading zero bits.
func TestSatisfiesMonotonic(t *testing.T) {
	for lead := uint32(0); lead <= MaxCost; lead++ {
		// Create a digest with exactly lead leading zero bits.
		var digest Digest
		if lead < MaxCost {
			digest[lead/8] = 0x80 >> (lead % 8)
		}
		if got := LeadingZeroBits(&digest); got != lead {
			t.Fatalf("digest %v: got %d leading zero bits, want %d", digest,
				got, lead)
		}

		for cost := uint32(0); cost <= MaxCost+1; cost++ {
			want := cost <= lead
			if got := Satisfies(&digest, cost); got != want {
				t.Errorf("digest with %d leading zero bits: cost %d -- got "+
					"%v, want %v", lead, cost, got, want)
			}
		}
	}
}

// TestCheckCost ensures only costs larger than the number of bits in a digest
// are rejected.
func TestCheckCost(t *testing.T) {
	tests := []struct {
		cost uint32
		want error
	}{
		{0, nil},
		{22, nil},
		{MaxCost, nil},
		{MaxCost + 1, ErrCostTooHigh},
		{math.MaxUint32, ErrCostTooHigh},
	}

	for _, test := range tests {
		err := CheckCost(test.cost)
		if !errors.Is(err, test.want) {
			t.Errorf("cost %d: mismatched err -- got %v, want %v", test.cost,
				err, test.want)
		}
	}
}

// TestExpectedAttempts ensures the expected number of attempts doubles with
// each bit of cost.
func TestExpectedAttempts(t *testing.T) {
	tests := []struct {
		cost uint32
		want float64
	}{
		{0, 1},
		{1, 2},
		{8, 256},
		{22, 4194304},
		{32, 4294967296},
	}

	for _, test := range tests {
		if got := ExpectedAttempts(test.cost); got != test.want {
			t.Errorf("cost %d: mismatched result -- got %v, want %v",
				test.cost, got, test.want)
		}
	}
}

// TestMeterForDuration ensures converting a hash rate and duration to a meter
// produces the expected results including saturation and invalid inputs.
func TestMeterForDuration(t *testing.T) {
	tests := []struct {
		name string        // test description
		rate float64       // hashes per second
		d    time.Duration // duration
		want uint32        // expected meter
	}{{
		name: "one million hashes per second for two seconds",
		rate: 1e6,
		d:    2 * time.Second,
		want: 2000000,
	}, {
		name: "half a second",
		rate: 1000,
		d:    500 * time.Millisecond,
		want: 500,
	}, {
		name: "saturates",
		rate: 1e12,
		d:    time.Hour,
		want: math.MaxUint32,
	}, {
		name: "zero rate",
		rate: 0,
		d:    time.Second,
		want: 0,
	}, {
		name: "negative rate",
		rate: -5,
		d:    time.Second,
		want: 0,
	}, {
		name: "NaN rate",
		rate: math.NaN(),
		d:    time.Second,
		want: 0,
	}, {
		name: "zero duration",
		rate: 1e6,
		d:    0,
		want: 0,
	}}

	for _, test := range tests {
		got := MeterForDuration(test.rate, test.d)
		if got != test.want {
			t.Errorf("%q: mismatched result -- got %d, want %d", test.name,
				got, test.want)
		}
	}
}
