package env

const AppName = "wavrig"

// Set at build time via -ldflags.
var (
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
