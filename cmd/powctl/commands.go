// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/decred/pow"
)

// cmdEnv houses the configuration and I/O used when running a command.
type cmdEnv struct {
	cfg             *config
	stdin           io.Reader
	stdinIsTerminal bool
	stdout          io.Writer
}

// command is implemented by all powctl commands.
type command interface {
	run(ctx context.Context, env *cmdEnv, args []string) error
}

// errNoProof is returned when a search exhausts its meter.
var errNoProof = errors.New("no proof found")

// decodePayload returns the payload described by the passed argument, which
// is hex when hex payloads are configured.
func (env *cmdEnv) decodePayload(arg string) ([]byte, error) {
	if !env.cfg.HexPayload {
		return []byte(arg), nil
	}
	payload, err := hex.DecodeString(strings.TrimSpace(arg))
	if err != nil {
		return nil, fmt.Errorf("malformed hex payload: %w", err)
	}
	return payload, nil
}

// readPayload returns the payload from the first argument when there is one
// and from stdin otherwise.  Reading from an interactive terminal is refused.
func (env *cmdEnv) readPayload(args []string) ([]byte, error) {
	if len(args) > 0 {
		return env.decodePayload(args[0])
	}
	if env.stdinIsTerminal {
		return nil, errors.New("no payload specified and stdin is a terminal")
	}

	payload, err := io.ReadAll(env.stdin)
	if err != nil {
		return nil, fmt.Errorf("unable to read payload from stdin: %w", err)
	}
	if env.cfg.HexPayload {
		return env.decodePayload(string(payload))
	}
	return payload, nil
}

// searchCmd defines the options for the search command.
type searchCmd struct {
	Cost    uint32 `short:"c" long:"cost" description:"Number of leading zero bits required of the digest"`
	Meter   uint32 `short:"m" long:"meter" description:"Maximum number of nonces to try"`
	Workers uint32 `short:"w" long:"workers" description:"Number of parallel workers (0 for one per processor core)"`
}

// Usage returns the positional arguments of the search command.
func (*searchCmd) Usage() string {
	return "[payload]"
}

func (c *searchCmd) run(ctx context.Context, env *cmdEnv, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("too many arguments -- got %d, want at most 1",
			len(args))
	}
	payload, err := env.readPayload(args)
	if err != nil {
		return err
	}
	if err := pow.CheckCost(c.Cost); err != nil {
		log.Warnf("The search can't succeed: %v", err)
	}

	solver := pow.NewSolver(&pow.Config{
		HashFunc:   env.cfg.hashFunc,
		NumWorkers: c.Workers,
	})
	log.Infof("Searching for a cost %d proof of a %d byte payload with %s "+
		"(meter %d, %.0f attempts expected)", c.Cost, len(payload),
		env.cfg.HashFunc, c.Meter, pow.ExpectedAttempts(c.Cost))
	start := time.Now()
	nonce, ok := solver.Solve(ctx, payload, c.Cost, c.Meter)
	if !ok {
		if ctx.Err() != nil {
			return fmt.Errorf("search interrupted: %w", ctx.Err())
		}
		return fmt.Errorf("%w for cost %d within meter of %d", errNoProof,
			c.Cost, c.Meter)
	}

	log.Infof("Found proof after %d hashes in %v", solver.TotalHashes(),
		time.Since(start).Round(time.Millisecond))
	fmt.Fprintln(env.stdout, nonce)
	return nil
}

// verifyCmd defines the options for the verify command.
type verifyCmd struct {
	Cost uint32 `short:"c" long:"cost" description:"Number of leading zero bits required of the digest"`
}

// Usage returns the positional arguments of the verify command.
func (*verifyCmd) Usage() string {
	return "payload nonce"
}

func (c *verifyCmd) run(_ context.Context, env *cmdEnv, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("wrong number of arguments -- got %d, want 2",
			len(args))
	}
	payload, err := env.decodePayload(args[0])
	if err != nil {
		return err
	}
	nonce, err := pow.NewNonceFromStr(args[1])
	if err != nil {
		return fmt.Errorf("malformed nonce: %w", err)
	}

	if err := pow.CheckProof(env.cfg.hashFunc, payload, nonce, c.Cost); err != nil {
		log.Debugf("Proof rejected: %v", err)
		fmt.Fprintln(env.stdout, "invalid")
		return fmt.Errorf("invalid proof: %w", err)
	}
	fmt.Fprintln(env.stdout, "valid")
	return nil
}

// rateCmd defines the options for the rate command.
type rateCmd struct {
	Meter    uint32        `short:"m" long:"meter" description:"Number of hashes to measure"`
	Workers  uint32        `short:"w" long:"workers" description:"Number of parallel workers (0 for one per processor core)"`
	Duration time.Duration `short:"t" long:"duration" description:"Duration to compute a meter for"`
}

func (c *rateCmd) run(ctx context.Context, env *cmdEnv, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unexpected arguments %q", args)
	}

	// No digest has more leading zero bits than it has bits, so every worker
	// runs until its share of the meter is exhausted.
	solver := pow.NewSolver(&pow.Config{
		HashFunc:   env.cfg.hashFunc,
		NumWorkers: c.Workers,
	})
	log.Infof("Measuring %s with %d %s", env.cfg.HashFunc, solver.NumWorkers(),
		pickWorkers(solver.NumWorkers()))
	solver.Solve(ctx, nil, pow.MaxCost+1, c.Meter)
	if ctx.Err() != nil {
		log.Warnf("Measurement interrupted after %d hashes",
			solver.TotalHashes())
	}

	hashesPerSec := solver.HashesPerSecond()
	if hashesPerSec == 0 {
		return errors.New("no hashes were measured")
	}
	fmt.Fprintf(env.stdout, "%.0f hashes/s\n", hashesPerSec)
	fmt.Fprintf(env.stdout, "meter for %v: %d\n", c.Duration,
		pow.MeterForDuration(hashesPerSec, c.Duration))
	return nil
}

// pickWorkers returns the singular or plural form of worker for n.
func pickWorkers(n uint32) string {
	if n == 1 {
		return "worker"
	}
	return "workers"
}
