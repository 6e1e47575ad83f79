// Package main provides the entry point for the ATS resume matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_matcher",
	Short: "ATS Resume Matcher",
	Long:  "ATS Resume Matcher scores resumes against job postings, reports matched and missing skills, and suggests concrete resume improvements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
