// Package printer turns the rendered resume page into a PDF by printing it
// through headless Chrome. The PDF is always produced from the same HTML the
// preview serves, so print output never drifts from what the user saw.
package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/resumify/resumify/internal/types"
)

const printTimeout = 60 * time.Second

// Printer drives a headless Chrome instance. ChromePath overrides browser
// discovery; empty means chromedp's default lookup.
type Printer struct {
	ChromePath string
}

func New(chromePath string) *Printer {
	return &Printer{ChromePath: chromePath}
}

// PDF prints the given standalone HTML page to A4 PDF bytes.
func (p *Printer) PDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.ChromePath))
	} else if env := os.Getenv("CHROME_PATH"); env != "" {
		opts = append(opts, chromedp.ExecPath(env))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, printTimeout)
	defer cancelRun()

	// Chrome navigates a file URL; data URLs trip over page size limits on
	// large documents.
	tmpDir, err := os.MkdirTemp("", "resumify-print-")
	if err != nil {
		return nil, &PrintError{Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &PrintError{Message: "failed to write page", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm is 8.27in x 11.69in.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &PrintError{Message: "chrome print failed", Cause: err}
	}
	return pdf, nil
}

// FileName derives the PDF download name the same way the DOCX export does,
// swapping the extension.
func FileName(doc types.ResumeDocument) string {
	name := strings.Join(strings.Fields(doc.Personal.FullName), "_")
	if name == "" {
		return "Resume_Resumify.pdf"
	}
	return fmt.Sprintf("%s_Resume_Resumify.pdf", name)
}
