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
		Use:   "glint",
		Short: "A minimal reactive component runtime for Go",
		Long: `Glint is a minimal server-driven reactive UI runtime for Go.

Components render into a live display tree, re-render in place when
their state or subscribed signals change, and observe their own
removal to run cleanup. The serve command runs a demo application
that streams re-rendered frames over a websocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
