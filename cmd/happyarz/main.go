// Package main is the entry point for the happy-arz server.
package main

import (
	"os"

	"github.com/donaldgifford/happy-arz/cmd/happyarz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
