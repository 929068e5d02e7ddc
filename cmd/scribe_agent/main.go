// Package main provides the entry point for the site report scribe.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scribe_agent",
	Short: "Construction site report extraction service",
	Long:  "Site-scribe extracts structured daily-report fields with per-field confidence scores from uploaded documents or raw text, and persists CSV snapshots of every extraction.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
