// Package main is the entry point for the smart-launcher CLI tool.
package main

import (
	"os"

	"github.com/gcbaptista/smart-selector/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
