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
		Use:   "stele",
		Short: "Element rendering toolkit for content sites",
		Long: `Stele renders content elements defined in a YAML manifest.

An element is a structured block of content (a teaser, a hero, a
quote) made of typed ingredients. Stele turns element definitions
into HTML, serves a live preview during development, and validates
manifests in CI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		renderCmd(),
		validateCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
