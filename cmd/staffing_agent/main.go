// Package main provides the entry point for the staffing engine CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "staffing_agent",
	Short: "Staffing engine CLI and HTTP API server",
	Long:  "Staffing engine produces ranked, scored, and justified staffing recommendations for projects, reconciles re-planned task assignments, and evaluates project health against deadlines and workload.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
