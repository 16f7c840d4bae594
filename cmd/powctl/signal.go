// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptSignals defines the default signals to catch in order to stop an
// in-flight search.  This may be modified during init depending on the
// platform.
var interruptSignals = []os.Signal{os.Interrupt}

// shutdownListener listens for OS Signals such as SIGINT (Ctrl+C).  It returns
// a context derived from the passed one that is canceled when a signal is
// received.
func shutdownListener(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)

		// Listen for initial shutdown signal and cancel the returned context.
		select {
		case sig := <-interruptChannel:
			log.Infof("Received signal (%s).  Stopping...", sig)
			cancel()
		case <-ctx.Done():
			signal.Stop(interruptChannel)
			return
		}

		// Listen for repeated signals and display a message so the user
		// knows the shutdown is in progress and the process is not hung.
		for sig := range interruptChannel {
			log.Infof("Received signal (%s).  Already stopping...", sig)
		}
	}()

	return ctx
}
