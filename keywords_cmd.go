package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumegenie/backend/keywords"
	"github.com/resumegenie/backend/models"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Print the keyword overlap between a structured resume and a job description",
	RunE:  runKeywords,
}

var (
	keywordsResumeFile string
	keywordsJobFile    string
)

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsResumeFile, "resume", "r", "", "Path to structured resume JSON file (required)")
	keywordsCmd.Flags().StringVarP(&keywordsJobFile, "job", "j", "", "Path to job description text file (required)")

	if err := keywordsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := keywordsCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	resumeData, err := os.ReadFile(keywordsResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume models.ResumeContent
	if err := json.Unmarshal(resumeData, &resume); err != nil {
		return fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}

	job, err := os.ReadFile(keywordsJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description file: %w", err)
	}

	out, err := json.MarshalIndent(keywords.ComputeOverlap(resume, string(job)), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal keyword analysis: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
