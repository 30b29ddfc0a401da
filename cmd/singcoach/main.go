// Package main provides the entry point for the SingCoach analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "singcoach",
	Short: "SingCoach vocal performance analysis",
	Long:  "SingCoach turns raw vocal recordings into structured coaching assessments: a transcript, 0-10 scores for pitch, tone, breath and timing, key moments, and exercise recommendations resolved against a library.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
