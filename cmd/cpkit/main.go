// SPDX-License-Identifier: MIT

// Command cpkit runs the cpkit algorithms from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cpkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
