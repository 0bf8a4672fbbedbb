// Package main provides the entry point for the resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Multi-theme resume generator",
	Long:  "resume_builder turns a structured resume payload into themed PDF resumes: optional AI enhancement of the written content, one document description per theme, external rendering, and publication to object storage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
