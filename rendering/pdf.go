package rendering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/models"
	"github.com/resumegenie/backend/schemas"
)

// Renderer converts an HTML document to PDF bytes
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer prints HTML to PDF with a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	execPath string
	timeout  time.Duration
}

// NewChromeRenderer creates a renderer. An empty execPath lets chromedp
// locate the browser.
func NewChromeRenderer(execPath string, timeout time.Duration) *ChromeRenderer {
	return &ChromeRenderer{execPath: execPath, timeout: timeout}
}

// RenderPDF loads the HTML into a blank page and prints it on Letter paper
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser PDF printing failed", Cause: err}
	}

	return buf, nil
}

// PDFGenerator renders structured resumes to PDF documents
type PDFGenerator struct {
	renderer Renderer
	now      func() time.Time
	logger   zerolog.Logger
}

// NewPDFGenerator creates a generator backed by the given renderer
func NewPDFGenerator(renderer Renderer) *PDFGenerator {
	return &PDFGenerator{
		renderer: renderer,
		now:      time.Now,
		logger:   logging.Component("pdf-generator"),
	}
}

// ValidateContent reports whether the resume has the minimum needed to be
// rendered: a contact_info object with a non-blank name.
func (g *PDFGenerator) ValidateContent(content models.ResumeContent) bool {
	if err := schemas.Validate(schemas.KindRenderable, content); err != nil {
		g.logger.Debug().Err(err).Msg("Resume content is not renderable")
		return false
	}
	return content.ContactName() != ""
}

// Generate renders the resume template and prints it to PDF
func (g *PDFGenerator) Generate(ctx context.Context, content models.ResumeContent) ([]byte, error) {
	html, err := RenderHTML(content, g.now())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pdf, err := g.renderer.RenderPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	g.logger.Info().
		Int("html_bytes", len(html)).
		Int("pdf_bytes", len(pdf)).
		Dur("elapsed", time.Since(start)).
		Msg("Generated resume PDF")

	return pdf, nil
}

// Filename builds the download name: resume_<name lower-cased, spaces as _>.pdf
func Filename(name string) string {
	return fmt.Sprintf("resume_%s.pdf", strings.ReplaceAll(strings.ToLower(name), " ", "_"))
}
