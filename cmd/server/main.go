// Package main is the entry point for the roams server.
package main

import (
	"fmt"
	"os"

	"github.com/roams-app/roams-server/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
