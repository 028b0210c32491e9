// Package main is the entry point for the harz CLI client.
package main

import (
	"github.com/donaldgifford/happy-arz/cmd/harz/cmd"
)

func main() {
	cmd.Execute()
}
