// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information for powctl.
package version

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
)

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.  Only the characters allowed by semver 2.0.0 are
// accepted in the pre-release and build metadata portions.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

var (
	// Version is the application version per the semantic versioning 2.0.0
	// spec (https://semver.org/).
	//
	// It may be overridden at build time with:
	// '-ldflags "-X github.com/decred/pow/internal/version.Version=fullsemver"'
	//
	// It MUST be a full semantic version or the package will panic at runtime.
	Version = "1.0.0-pre"

	// These fields are set via init by parsing Version.
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
)

// semVer houses the components of a parsed semantic version string.
type semVer struct {
	major, minor, patch uint
	preRelease, build   string
}

// parseSemVer parses the components of the provided semantic version string.
func parseSemVer(s string) (*semVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var nums [3]uint
	for i, field := range []string{"major", "minor", "patch"} {
		val, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return nil, fmt.Errorf("malformed semver %s: %w", field, err)
		}
		nums[i] = uint(val)
	}

	return &semVer{
		major:      nums[0],
		minor:      nums[1],
		patch:      nums[2],
		preRelease: m[4],
		build:      m[5],
	}, nil
}

// vcsCommitID returns the abbreviated commit the binary was built from when
// the build info embeds it.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var vcs, revision string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs":
			vcs = bs.Value
		case "vcs.revision":
			revision = bs.Value
		}
	}
	if vcs == "git" && len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// withCommit returns the version with the commit added as build metadata for
// pre-release builds from source that do not already specify any.
func withCommit(ver *semVer, version, commit string) string {
	if ver.preRelease == "" || ver.build != "" || commit == "" {
		return version
	}
	return version + "+" + commit
}

func init() {
	ver, err := parseSemVer(Version)
	if err != nil {
		panic(err)
	}
	if v := withCommit(ver, Version, vcsCommitID()); v != Version {
		if ver, err = parseSemVer(v); err != nil {
			panic(err)
		}
		Version = v
	}
	Major, Minor, Patch = ver.major, ver.minor, ver.patch
	PreRelease, BuildMetadata = ver.preRelease, ver.build
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}
