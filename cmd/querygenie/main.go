// Package main is the entry point of the querygenie CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/querygenie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
