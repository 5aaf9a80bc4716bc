package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	assumeYes bool
)

var rootCmd = &cobra.Command{
	Use:   "tournaments",
	Short: "Manage round-robin tennis tournaments",
	Long: `A command-line interface for managing round-robin tennis tournaments:
team registration, fixture generation, score entry, standings, and result
imports from OCR text or pasted HTML.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&assumeYes, "yes", false, "Skip confirmation prompts")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
