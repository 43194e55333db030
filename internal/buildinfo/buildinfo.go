// Package buildinfo carries the version string stamped into the skim
// binary, read by cmd/skim for the --version flag urfave/cli/v3
// generates automatically.
package buildinfo

// Version is overridden at link time with -ldflags
// "-X github.com/jarns/skim/internal/buildinfo.Version=...", the same
// convention rlch-scaf's cmd/scaf/main.go uses for its version var.
var Version = "dev"
