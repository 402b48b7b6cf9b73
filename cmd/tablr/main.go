// Package main implements the tablr binary, a thin shell around the
// tablr library with the CLI glue kept under internal.
package main

import (
	"fmt"
	"os"

	"github.com/bjaus/tablr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
