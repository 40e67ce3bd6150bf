// Resume Genie backend: resume polishing, job match analysis and PDF export.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/logging"
)

// @title Resume Genie API
// @version 1.0
// @description AI-powered resume polishing, job match analysis and PDF generation.

// @contact.name API Support

// @license.name MIT

// @host localhost:8000
// @BasePath /api

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "resumegenie",
	Short: "Resume Genie backend",
	Long:  "Resume Genie turns uploaded resumes into structured, polished content, scores them against job descriptions and renders them back to PDF.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg = config.Load()
		logging.Setup(cfg.LogLevel, cfg.LogFormat)
	},
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	// Load .env file if present (for local development)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
