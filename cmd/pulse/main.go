package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "Tooling for the pulse discrete-event stream engine",
		Long: `pulse ships a small engine for discrete-event reactive streams and a
library of combinators on top of it (fair merging, switching, sampling,
initial-value-aware folds).

This binary provides supporting tooling:

  • bench    measure propagation throughput of a representative graph
  • version  print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		benchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
