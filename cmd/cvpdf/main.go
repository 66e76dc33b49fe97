// Package main is the cvpdf command: it renders the active profile's résumé
// to PDF, mails it, or serves it over HTTP.
//
// Usage: cvpdf render|mail|serve [--config config.yaml] [--sec key]...
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "cvpdf",
	Short:         "Résumé PDF generator",
	Long:          "cvpdf composes the active profile's résumé into a paginated PDF with a header and selectable sections.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to YAML config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
