// Package main provides the entry point for the statvis CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/vdobler/statvis/cmd/statvis/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
