// SPDX-License-Identifier: MIT

// Command colexnet loads a colexification network from CSV and runs
// analyses over it: focus-concept visualization listings, random-walk
// visitation distributions, the approximate longest-path proxy and graph
// statistics.
package main

import (
	"os"

	"github.com/katalvlaran/colexnet/internal/logger"
	"github.com/katalvlaran/colexnet/internal/logger/console"
)

func main() {
	// INFO on stderr until the configuration is resolved
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{}))

	// cobra prints the error to stderr
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
