// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// MaxNumWorkers is the maximum number of workers that will be allowed for
	// a parallel search and is based on the number of processor cores.  This
	// helps ensure the system stays reasonably responsive under heavy load.
	MaxNumWorkers = uint32(runtime.NumCPU() * 2)

	// defaultNumWorkers is the number of workers used when the configuration
	// does not specify one.
	defaultNumWorkers = uint32(runtime.NumCPU())
)

// speedStats houses tracking information used to monitor the hashing speed of
// a solver.
type speedStats struct {
	totalHashes   atomic.Uint64
	elapsedMicros atomic.Uint64
}

// Config is a descriptor containing the solver configuration.
type Config struct {
	// HashFunc is the hash function applied to each nonce and payload.  It
	// defaults to BLAKE3 when nil.
	HashFunc HashFunc

	// NumWorkers is the number of goroutines that search in parallel.  Zero
	// selects the number of processor cores and values larger than
	// MaxNumWorkers are limited to it.
	NumWorkers uint32
}

// Solver searches for proofs of work using multiple goroutines in a
// concurrency-safe manner.
//
// Each call to Solve splits the meter between the workers.  Every worker draws
// nonces from its own random source, and the first worker that finds a valid
// nonce signals the others to stop at their next attempt.
type Solver struct {
	hashFunc   HashFunc
	numWorkers uint32
	stats      speedStats
}

// NewSolver returns a new solver for the provided configuration options.  A
// nil configuration selects all defaults.
func NewSolver(cfg *Config) *Solver {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	if c.HashFunc == nil {
		c.HashFunc = Hash
	}
	switch {
	case c.NumWorkers == 0:
		c.NumWorkers = defaultNumWorkers
	case c.NumWorkers > MaxNumWorkers:
		c.NumWorkers = MaxNumWorkers
	}
	if c.NumWorkers == 0 {
		c.NumWorkers = 1
	}

	return &Solver{
		hashFunc:   c.HashFunc,
		numWorkers: c.NumWorkers,
	}
}

// NumWorkers returns the maximum number of workers used by each call to Solve.
func (s *Solver) NumWorkers() uint32 {
	return s.numWorkers
}

// Solve attempts to find a nonce such that the digest of the nonce followed by
// the payload has at least cost leading zero bits.  No more than meter nonces
// are tried across all workers.
//
// The second return value is false when the meter is exhausted or the
// context is cancelled before a nonce is found.  Any valid nonce may be
// returned, not necessarily the first one generated.
//
// The payload is shared by the workers and must not be modified until Solve
// returns.
//
// This function is safe for concurrent access.
func (s *Solver) Solve(ctx context.Context, payload []byte, cost, meter uint32) (Nonce, bool) {
	// Nothing to do.
	if meter == 0 {
		return Nonce{}, false
	}

	// Never launch more workers than there are attempts to share.
	numWorkers := s.numWorkers
	if numWorkers > meter {
		numWorkers = meter
	}
	log.Tracef("Launching %d %s to search %d %s for cost %d", numWorkers,
		pickNoun(uint64(numWorkers), "worker", "workers"), meter,
		pickNoun(uint64(meter), "attempt", "attempts"), cost)

	// The first worker to find a solution sets the solved flag, which the
	// remaining workers check on every attempt, and cancels the context in
	// case any of them are blocked elsewhere.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		solved   atomic.Bool
		solution Nonce
		hashes   atomic.Uint64
	)
	start := time.Now()
	share, extra := meter/numWorkers, meter%numWorkers
	for i := uint32(0); i < numWorkers; i++ {
		workerMeter := share
		if i < extra {
			workerMeter++
		}

		wg.Add(1)
		go func(workerID, workerMeter uint32) {
			defer wg.Done()

			nonce, found, attempts := searchLoop(ctx, s.hashFunc,
				newNonceSource(), payload, cost, workerMeter, &solved)
			hashes.Add(attempts)
			if !found || !solved.CompareAndSwap(false, true) {
				return
			}

			solution = nonce
			cancel()
			log.Debugf("Worker %d found nonce %v for cost %d after %d %s",
				workerID, nonce, cost, attempts,
				pickNoun(attempts, "attempt", "attempts"))
		}(i, workerMeter)
	}
	wg.Wait()

	// Update the speed stats.
	totalHashes := hashes.Load()
	elapsed := time.Since(start)
	s.stats.totalHashes.Add(totalHashes)
	s.stats.elapsedMicros.Add(uint64(elapsed.Microseconds()))
	if secs := elapsed.Seconds(); secs > 0 {
		log.Debugf("Hash speed: %6.0f kilohashes/s (%d %s in %v)",
			float64(totalHashes)/secs/1000, totalHashes,
			pickNoun(totalHashes, "hash", "hashes"), elapsed)
	}

	if !solved.Load() {
		if ctx.Err() != nil && totalHashes < uint64(meter) {
			log.Debugf("Search for cost %d cancelled after %d %s", cost,
				totalHashes, pickNoun(totalHashes, "attempt", "attempts"))
		} else {
			log.Debugf("No nonce for cost %d found within meter of %d", cost,
				meter)
		}
		return Nonce{}, false
	}
	return solution, true
}

// TotalHashes returns the total number of hashes computed by all calls to
// Solve.
//
// This function is safe for concurrent access.
func (s *Solver) TotalHashes() uint64 {
	return s.stats.totalHashes.Load()
}

// HashesPerSecond returns the average number of hashes per second computed
// by all calls to Solve.  0 is returned if nothing has been solved yet.
//
// Note that the elapsed time of concurrent calls to Solve is summed, so the
// result is only meaningful when calls do not overlap.
//
// This function is safe for concurrent access.
func (s *Solver) HashesPerSecond() float64 {
	totalHashes := s.stats.totalHashes.Load()
	elapsedMicros := s.stats.elapsedMicros.Load()
	if totalHashes == 0 || elapsedMicros == 0 {
		return 0
	}
	return float64(totalHashes) / (float64(elapsedMicros) / 1e6)
}
