package main

import (
	"os"

	"zkevmsite/cmd/zktrack/commands"
)

var version = "dev"

func main() {
	commands.SetVersion(version)
	// Errors are printed by the printer package before they reach here.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
