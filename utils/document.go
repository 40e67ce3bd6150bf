package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	dslipak "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"github.com/resumegenie/backend/logging"
)

// MinTextLength is the amount of trimmed text an extraction must yield to be
// considered usable
const MinTextLength = 50

// FallbackText is returned when no extractor produced usable text
const FallbackText = "Unable to extract meaningful text from PDF"

// ErrInvalidPDF is returned for content that is not a readable PDF
var ErrInvalidPDF = errors.New("invalid PDF file or corrupted file")

// DocumentExtractor extracts text from uploaded PDF documents
type DocumentExtractor struct {
	logger zerolog.Logger
}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{logger: logging.Component("pdf")}
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".pdf"
}

// ReadAll reads an upload, refusing anything larger than limit bytes
func (e *DocumentExtractor) ReadAll(r io.Reader, limit int64) ([]byte, error) {
	buf := new(bytes.Buffer)
	n, err := io.Copy(buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if n > limit {
		return nil, fmt.Errorf("file exceeds %d bytes", limit)
	}
	return buf.Bytes(), nil
}

// Validate checks the %PDF header and that the document has at least one page
func (e *DocumentExtractor) Validate(content []byte) error {
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		return ErrInvalidPDF
	}

	pages, err := countPages(content)
	if err != nil {
		e.logger.Debug().Err(err).Msg("PDF failed to open during validation")
		return ErrInvalidPDF
	}
	if pages == 0 {
		return ErrInvalidPDF
	}
	return nil
}

// ExtractText tries the primary extractor and falls back to the second one
// when the first yields too little text. If neither produces usable text the
// best attempt (or FallbackText) is returned.
func (e *DocumentExtractor) ExtractText(content []byte) string {
	text, err := extractPrimary(content)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Primary PDF extraction failed")
	}
	if len(strings.TrimSpace(text)) > MinTextLength {
		return text
	}

	text, err = extractFallback(content)
	if err != nil {
		e.logger.Warn().Err(err).Msg("Fallback PDF extraction failed")
	}
	if len(strings.TrimSpace(text)) > MinTextLength {
		return text
	}

	e.logger.Warn().Int("chars", len(text)).Msg("PDF text extraction yielded minimal content")
	if text == "" {
		return FallbackText
	}
	return text
}

func countPages(content []byte) (pages int, err error) {
	defer recoverParse(&err)

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

func extractPrimary(content []byte) (text string, err error) {
	defer recoverParse(&err)

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract plain text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read text buffer: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func extractFallback(content []byte) (text string, err error) {
	defer recoverParse(&err)

	reader, err := dslipak.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// recoverParse converts a panic from a PDF parser into an error.
// Both parsers panic on some malformed inputs.
func recoverParse(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("pdf parser panic: %v", r)
	}
}
