package extract_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/JaimeStill/redline/internal/extract"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		if p == "" {
			body.WriteString(`<w:p/>`)
			continue
		}
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := entry.Write(body.Bytes()); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	return buf.Bytes()
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     extract.Kind
		wantErr  bool
	}{
		{"pdf", "report.pdf", extract.KindPDF, false},
		{"pdf uppercase", "REPORT.PDF", extract.KindPDF, false},
		{"docx", "essay.docx", extract.KindWord, false},
		{"doc", "legacy.doc", extract.KindWord, false},
		{"text file", "notes.txt", "", true},
		{"no extension", "README", "", true},
		{"empty name", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := extract.DetectKind(tt.filename)

			if tt.wantErr {
				if !errors.Is(err, extract.ErrUnsupportedDocument) {
					t.Errorf("error: got %v, want ErrUnsupportedDocument", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("detect failed: %v", err)
			}
			if kind != tt.want {
				t.Errorf("kind: got %s, want %s", kind, tt.want)
			}
		})
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	if _, err := extract.Extract([]byte("plain text"), "notes.txt"); !errors.Is(err, extract.ErrUnsupportedDocument) {
		t.Errorf("error: got %v, want ErrUnsupportedDocument", err)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	if _, err := extract.Extract([]byte("not a pdf"), "broken.pdf"); !errors.Is(err, extract.ErrCorruptDocument) {
		t.Errorf("error: got %v, want ErrCorruptDocument", err)
	}
}

func TestExtractCorruptWord(t *testing.T) {
	if _, err := extract.Extract([]byte("not a zip archive"), "broken.docx"); !errors.Is(err, extract.ErrCorruptDocument) {
		t.Errorf("error: got %v, want ErrCorruptDocument", err)
	}
}

func TestExtractWordMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := entry.Write([]byte("<styles/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := extract.Extract(buf.Bytes(), "empty.docx"); !errors.Is(err, extract.ErrCorruptDocument) {
		t.Errorf("error: got %v, want ErrCorruptDocument", err)
	}
}

func TestExtractWordParagraphOrder(t *testing.T) {
	data := buildDocx(t, "First paragraph.", "Second paragraph.", "Third paragraph.")

	result, err := extract.Extract(data, "essay.docx")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if result.Kind != extract.KindWord {
		t.Errorf("kind: got %s, want %s", result.Kind, extract.KindWord)
	}
	if result.PageCount != nil {
		t.Errorf("page count: got %d, want nil for word documents", *result.PageCount)
	}

	want := "First paragraph.\nSecond paragraph.\nThird paragraph."
	if result.Text != want {
		t.Errorf("text: got %q, want %q", result.Text, want)
	}
}

func TestExtractWordPreservesEmptyParagraphs(t *testing.T) {
	data := buildDocx(t, "Before the gap.", "", "After the gap.")

	result, err := extract.Extract(data, "gaps.docx")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	want := "Before the gap.\n\nAfter the gap."
	if result.Text != want {
		t.Errorf("text: got %q, want %q", result.Text, want)
	}
}
