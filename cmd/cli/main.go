// Package main is the entry point for the tariffbill CLI.
package main

import (
	"os"

	"tariffbill/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
