// Command nmap-navigator is the entry point for the scan report organizer.
package main

import "github.com/theawkwardchild/nmap-navigator/cmd/cli"

// Build information - set by ldflags during build.
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	cli.SetVersion(version, commit, buildTime)
	cli.Execute()
}
