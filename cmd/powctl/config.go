// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decred/pow"
	"github.com/decred/pow/internal/version"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "powctl.conf"
	defaultLogLevel       = "info"
	defaultMaxLogSize     = 10 // MiB
	defaultMaxLogFiles    = 3
	defaultHashFunc       = "blake3"
	defaultCost           = 20
	defaultMeter          = 10000000
	defaultRateMeter      = 1 << 22
	defaultRateDuration   = time.Second
)

var (
	defaultHomeDir    = appDataDir("powctl")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// config defines the global configuration options.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write logs to the specified file"`
	MaxLogSize  int64  `long:"maxlogsize" description:"Maximum size in MiB of the log file before it is rotated"`
	MaxLogFiles int    `long:"maxlogfiles" description:"Maximum number of rotated log files to keep (0 to keep all)"`
	HashFunc    string `short:"a" long:"hash" description:"Hash function applied to the nonce and payload {blake3, blake256, sha256}"`
	HexPayload  bool   `short:"x" long:"hexpayload" description:"Decode payloads as hexadecimal"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	// The following fields are set by loadConfig after validating the
	// options above.
	hashFunc pow.HashFunc
}

// errSuppressUsage signifies that an error that happened during the initial
// configuration phase should suppress the usage output since it was not caused
// by the user.
type errSuppressUsage string

// Error implements the error interface.
func (e errSuppressUsage) Error() string {
	return string(e)
}

// appDataDir returns the default directory for the application data of the
// named application.  The current directory is used when the user config
// directory can't be determined.
func appDataDir(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Nothing to do when no path is given.
	if path == "" {
		return path
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows cmd.exe-style
	// %VARIABLE%, but the variables can still be expanded via POSIX-style
	// $VARIABLE.
	path = os.ExpandEnv(path)
	if !strings.HasPrefix(path, "~") {
		return filepath.Clean(path)
	}

	// Expand the initial ~ to the current user's home directory.  Other
	// users are not supported.
	homeDir, err := os.UserHomeDir()
	if err != nil || (len(path) > 1 && path[1] != '/' && path[1] != '\\') {
		return filepath.Clean(path)
	}
	return filepath.Join(homeDir, path[1:])
}

// newConfigParser returns a new command line parser for the passed global
// configuration that includes all commands.  The returned map houses the
// command for each command name.
func newConfigParser(cfg *config, options flags.Options) (*flags.Parser, map[string]command) {
	parser := flags.NewParser(cfg, options)
	cmds := map[string]command{
		"search": &searchCmd{Cost: defaultCost, Meter: defaultMeter},
		"verify": &verifyCmd{Cost: defaultCost},
		"rate": &rateCmd{
			Meter:    defaultRateMeter,
			Duration: defaultRateDuration,
		},
	}
	descs := []struct{ name, short, long string }{
		{"search", "Search for a proof of work",
			"Search for a nonce whose digest with the payload has at least " +
				"the requested number of leading zero bits and print it in " +
				"hex.  The payload is read from stdin when it is not given."},
		{"verify", "Verify a proof of work",
			"Verify the hex nonce is a proof of work for the payload at the " +
				"requested cost."},
		{"rate", "Measure the hash rate",
			"Measure the number of hashes per second and print the meter " +
				"that corresponds to the requested duration."},
	}
	for _, desc := range descs {
		_, err := parser.AddCommand(desc.name, desc.short, desc.long,
			cmds[desc.name])
		if err != nil {
			// Only possible with invalid struct tags.
			panic(err)
		}
	}
	return parser, cmds
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in powctl functioning properly without any config settings
// while still allowing the user to override settings with config files and
// command line options.  Command line options always take precedence.
//
// The command selected on the command line is returned along with the
// remaining arguments.
func loadConfig(appName string, args []string) (*config, command, []string, error) {
	// Default config.
	cfg := config{
		ConfigFile:  defaultConfigFile,
		DebugLevel:  defaultLogLevel,
		MaxLogSize:  defaultMaxLogSize,
		MaxLogFiles: defaultMaxLogFiles,
		HashFunc:    defaultHashFunc,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the help
	// message error can be ignored here since they will be caught by the
	// final parse below.
	preCfg := cfg
	preParser, _ := newConfigParser(&preCfg, flags.HelpFlag|
		flags.PassDoubleDash|flags.IgnoreUnknown)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, version.String())
		os.Exit(0)
	}

	// Load additional config from file.
	parser, cmds := newConfigParser(&cfg, flags.Default)
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		// Only a missing default config file is ignored.
		if !errors.Is(err, os.ErrNotExist) ||
			preCfg.ConfigFile != defaultConfigFile {

			err := fmt.Errorf("error parsing config file: %w", err)
			return nil, nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, nil, err
	}
	cmd := cmds[parser.Active.Name]

	// Set the log levels of all subsystems.
	if !setLogLevels(cfg.DebugLevel) {
		str := "the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, cfg.DebugLevel)
		return nil, nil, nil, err
	}

	// Look up the hash function.
	cfg.hashFunc, err = pow.HashFuncByName(cfg.HashFunc)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid hash function: %w", err)
	}

	// Initialize the log rotator when a log file is requested.
	if cfg.LogFile != "" {
		if cfg.MaxLogSize <= 0 {
			str := "the max log size must be positive -- parsed [%d]"
			err := fmt.Errorf(str, cfg.MaxLogSize)
			return nil, nil, nil, err
		}
		if cfg.MaxLogFiles < 0 {
			str := "the max log files must not be negative -- parsed [%d]"
			err := fmt.Errorf(str, cfg.MaxLogFiles)
			return nil, nil, nil, err
		}
		cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
		err := initLogRotator(cfg.LogFile, cfg.MaxLogSize, cfg.MaxLogFiles)
		if err != nil {
			return nil, nil, nil, errSuppressUsage(err.Error())
		}
	}

	return &cfg, cmd, remainingArgs, nil
}
