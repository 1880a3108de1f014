// Package main is the entry point for samesize.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/samesize/internal/cli"
)

// version is set via ldflags at build time.
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
