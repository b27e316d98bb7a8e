package main

import "fmt"

// Build-time variables, set via ldflags:
//
//	go build -ldflags "-X main.version=0.1.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// versionString is printed by --version.
func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}
