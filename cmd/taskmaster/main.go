// Package main provides the entry point for the taskmaster board.
//
// Usage:
//
//	taskmaster [command] [flags]
//
// Without a command the board opens in the terminal.
package main

import (
	"os"

	"github.com/riordanpawley/taskmaster/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
