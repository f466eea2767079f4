// Package utils holds small helpers shared across the occ commands
// that are too slight to warrant packages of their own.
package utils

// Build metadata, overridden at release time via -ldflags. The
// defaults identify a local development build.
var (
	Version   = "dev"
	Sha       = "HEAD"
	Buildtime = "dev"
)
