package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DOCX document.xml structure. Namespace prefixes are ignored because
// encoding/xml matches local names.
type wordDocument struct {
	Body wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Texts  []wordText `xml:"t"`
	Tabs   []struct{} `xml:"tab"`
	Breaks []struct{} `xml:"br"`
}

type wordText struct {
	Content string `xml:",chardata"`
}

// extractWord pulls each paragraph's text from word/document.xml in
// document order. Empty paragraphs are preserved so the original
// blank-line signal carries into the joined output.
func extractWord(data []byte) (*Result, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	content, err := readDocumentXML(reader)
	if err != nil {
		return nil, err
	}

	var doc wordDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse document.xml: %w", ErrCorruptDocument, err)
	}

	paragraphs := make([]string, len(doc.Body.Paragraphs))
	for i, p := range doc.Body.Paragraphs {
		paragraphs[i] = paragraphText(p)
	}

	return &Result{
		Text: strings.Join(paragraphs, "\n"),
		Kind: KindWord,
	}, nil
}

func readDocumentXML(reader *zip.Reader) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open document.xml: %w", ErrCorruptDocument, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("%w: read document.xml: %w", ErrCorruptDocument, err)
		}
		return content, nil
	}

	return nil, fmt.Errorf("%w: missing word/document.xml", ErrCorruptDocument)
}

func paragraphText(p wordParagraph) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		for range run.Tabs {
			sb.WriteString("\t")
		}
		for _, t := range run.Texts {
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}
