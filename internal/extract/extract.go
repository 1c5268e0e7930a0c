// Package extract converts uploaded document bytes into plain text.
// Extraction dispatches on the file extension and preserves source order:
// PDF page texts and Word paragraph texts are joined with single newlines.
// Paragraph boundaries are re-derived downstream by the normalizer, so
// extraction keeps the raw layout signal rather than interpreting it.
package extract

import (
	"path/filepath"
	"strings"
)

// Kind identifies a supported document format.
type Kind string

// Supported document kinds.
const (
	KindPDF  Kind = "pdf"
	KindWord Kind = "word"
)

// DetectKind determines the document kind from the file name extension.
// Returns ErrUnsupportedDocument for unrecognized extensions.
func DetectKind(filename string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx", ".doc":
		return KindWord, nil
	default:
		return "", ErrUnsupportedDocument
	}
}

// Result holds the extracted text and any format metadata gathered along
// the way. PageCount is nil for Word documents.
type Result struct {
	Text      string
	Kind      Kind
	PageCount *int
}

// Extract converts document bytes into plain text, dispatching by the
// file name extension. No partial result is returned on failure.
func Extract(data []byte, filename string) (*Result, error) {
	kind, err := DetectKind(filename)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindPDF:
		return extractPDF(data)
	default:
		return extractWord(data)
	}
}
