// Package main provides the skillplan CLI: skill extraction, gap analysis
// and roadmap scheduling against a job posting.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillplan",
	Short: "Skill gap analysis and learning roadmap planner",
	Long:  "Skillplan matches the skills demonstrated in a resume against a job description's requirements and turns the gap into a week-by-week study plan under a weekly hour budget.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
