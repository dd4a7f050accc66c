// Package version centralizes version information for the typehash tool.
package version

import (
	"github.com/standardbeagle/typehash/pkg/typehash"
)

const (
	// Version is the current semantic version of the tool
	Version = "0.2.0"

	// BuildDate is set during build time (use -ldflags)
	BuildDate = "development"

	// GitCommit is set during build time (use -ldflags)
	GitCommit = "unknown"
)

// AlgorithmVersion is the hash-recipe version stamped into manifests so
// consumers can distinguish data hashed under earlier recipes.
const AlgorithmVersion = typehash.AlgorithmVersion

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information
func FullInfo() string {
	return "typehash " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
