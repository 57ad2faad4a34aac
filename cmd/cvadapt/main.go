// Package main provides the entry point for the cvadapt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvadapt",
	Short: "Job-tailored CV generation",
	Long:  "cvadapt turns a free-form CV and a job description into a structured, job-tailored CV, validating every generated section against the target language.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
