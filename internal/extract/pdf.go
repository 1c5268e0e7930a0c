package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// extractPDF pulls text from each page in page order. Pages without an
// extractable text layer (scanned images) contribute an empty string so
// page alignment survives into the joined output.
func extractPDF(data []byte) (*Result, error) {
	pageCount, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader.Page(i)))
	}

	return &Result{
		Text:      strings.Join(pages, "\n"),
		Kind:      KindPDF,
		PageCount: &pageCount,
	}, nil
}

func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		// no text layer on this page
		return ""
	}
	return text
}
