package main

import (
	"fmt"
	"os"

	"github.com/iudanet/stockflow/internal/client/cli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	root := cli.NewRootCommand(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit), cli.Open)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
