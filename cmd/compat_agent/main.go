// Package main provides the entry point for the resume/job compatibility
// assessment CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "compat_agent",
	Short: "Resume/job compatibility assessment engine",
	Long:  "Compat Agent scores how well a resume matches a job posting: skill and experience matching against a technology relationship map, blended with an external semantic-similarity signal, with actionable suggestions for the gaps.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
