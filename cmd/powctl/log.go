// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/pow"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Loggers can not be used before the log rotator has been initialized with a
// log file.  This must be performed early during application startup by
// calling initLogRotator when a log file is configured.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log    = backendLog.Logger("CTL")
	powLog = backendLog.Logger("POW")
)

// Initialize package-global logger variables.
func init() {
	pow.UseLogger(powLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"CTL": log,
	"POW": powLog,
}

// initLogRotator initializes the logging rotator to write logs to logFile and
// create roll files in the same directory.  The file is rolled once it grows
// beyond maxLogSize MiB and at most maxLogFiles rolled files are kept.
func initLogRotator(logFile string, maxLogSize int64, maxLogFiles int) error {
	if logDir, _ := filepath.Split(logFile); logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, maxLogSize*1024, false, maxLogFiles)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.  It returns false when the level is not a valid log level.
func setLogLevels(logLevel string) bool {
	level, ok := slog.LevelFromString(logLevel)
	if !ok {
		return false
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return true
}
