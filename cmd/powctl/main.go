// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/decred/pow/internal/version"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// powctlMain is the real main function for powctl.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func powctlMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	cfg, cmd, args, err := loadConfig(appName, os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			// The parser already printed the error or help message.
			if e.Type == flags.ErrHelp {
				return nil
			}
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		var su errSuppressUsage
		if !errors.As(err, &su) {
			fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
		}
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a context that will be canceled when an interrupt signal such as
	// SIGINT (Ctrl+C) is received.
	ctx := shutdownListener(context.Background())

	log.Debugf("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	env := &cmdEnv{
		cfg:             cfg,
		stdin:           os.Stdin,
		stdinIsTerminal: term.IsTerminal(int(os.Stdin.Fd())),
		stdout:          os.Stdout,
	}
	if err := cmd.run(ctx, env, args); err != nil {
		log.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := powctlMain(); err != nil {
		os.Exit(1)
	}
}
