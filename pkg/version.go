// Package argodb holds build-time version information for the CLI.
package argodb

var (
	// Version is set by build flags.
	Version = "dev"

	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
