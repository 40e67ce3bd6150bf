package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/utils"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Print the text extracted from a resume PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	extractor := utils.NewDocumentExtractor()

	if !extractor.IsSupportedFormat(filepath.Base(path)) {
		return fmt.Errorf("%s", models.MsgOnlyPDF)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	content, err := extractor.ReadAll(f, int64(cfg.MaxUploadMB)<<20)
	if err != nil {
		return err
	}

	if err := extractor.Validate(content); err != nil {
		return fmt.Errorf("%s: %w", models.MsgInvalidPDF, err)
	}

	text := extractor.ExtractText(content)
	if len(strings.TrimSpace(text)) < models.MinExtractedTextLength {
		return fmt.Errorf("%s", models.MsgInsufficientPDFText)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
