// Package version provides version information for the gateway.
package version

// Build information (set via ldflags during build)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)
