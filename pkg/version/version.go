// Package version reports the fuelco2 build version. The values are set at
// link time:
//
//	go build -ldflags "-X github.com/rshade/fuelco2/pkg/version.version=v1.2.0 \
//	  -X github.com/rshade/fuelco2/pkg/version.gitCommit=abc1234"
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

//nolint:gochecknoglobals // Overridden with -ldflags at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the normalized semantic version, without a leading v.
// A version string that is not semver is returned unchanged.
func GetVersion() string {
	return Normalize(version)
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Normalize parses v as semver ("v1.2", "1.2.0-rc.1") and returns its
// canonical form. Unparseable input is returned as-is.
func Normalize(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return sv.String()
}

// IsPrerelease reports whether the build version carries a prerelease tag.
func IsPrerelease() bool {
	sv, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}

// Info returns the multi-line version report printed by `fuelco2 version`.
// Prerelease builds are marked on the first line.
func Info() string {
	ver := GetVersion()
	if IsPrerelease() {
		ver += " (prerelease)"
	}
	return fmt.Sprintf("fuelco2 %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s\n",
		ver, gitCommit, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
