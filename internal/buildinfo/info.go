// Package buildinfo carries version metadata stamped at build time.
package buildinfo

var (
	// Version is set via ldflags during release builds.
	Version = "dev"
	// Commit is the short git hash, set via ldflags.
	Commit = "none"
	// Date is the build timestamp, set via ldflags.
	Date = "unknown"
)
