package semmeta

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the semmeta library.
const Version = "0.3.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.3.0")
	Version string
	// GitCommit is the git commit hash
	GitCommit string
	// BuildTime is the build timestamp
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// String renders the version on one line, as printed by "semmeta version".
func (v VersionInfo) String() string {
	return fmt.Sprintf("semmeta %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime come from -ldflags when set, otherwise from the
// VCS stamp the go tool embeds in the binary. Missing values read "unknown".
//
// Example build command:
//
//	go build -ldflags="-X github.com/semtools/semmeta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/semtools/semmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/semmeta
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = s.Value
				}
			}
		}
	}
	return info
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
