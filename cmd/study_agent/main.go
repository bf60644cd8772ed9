// Package main provides the entry point for the Study Summarizer job engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "study_agent",
	Short: "Study Summarizer job engine",
	Long:  "Study Summarizer turns uploaded course material into an academically structured study summary and a concept graph, served over a REST API with polled job status.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
