package analyses_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/JaimeStill/redline/internal/analyses"
	"github.com/JaimeStill/redline/internal/workflow"
)

type fakeGenerator struct {
	revisions map[string]string
	err       error
}

func (g *fakeGenerator) Generate(_ context.Context, _, content string) (string, error) {
	if g.err != nil {
		return "", g.err
	}

	if before, paragraph, found := strings.Cut(content, "Paragraph:\n"); found && strings.HasPrefix(before, "Instructions:") {
		if revised, ok := g.revisions[paragraph]; ok {
			return revised, nil
		}
		return paragraph, nil
	}

	return strings.ReplaceAll(content, "\n", "\n\n"), nil
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
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

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func collectEvents(t *testing.T, sys analyses.System, cmd analyses.AnalyzeCommand) []analyses.Event {
	t.Helper()

	events := make(chan analyses.Event, 64)
	go func() {
		defer close(events)
		sys.Analyze(context.Background(), cmd, events)
	}()

	var collected []analyses.Event
	for event := range events {
		collected = append(collected, event)
	}
	return collected
}

func eventNames(events []analyses.Event) []string {
	names := make([]string, len(events))
	for i, event := range events {
		names[i] = event.Name
	}
	return names
}

func TestAnalyzeEventSequence(t *testing.T) {
	generator := &fakeGenerator{
		revisions: map[string]string{
			"He go to school.": "He goes to school.",
			"She like apples.": "She likes apples.",
		},
	}

	sys := analyses.New(generator, testLogger(), 1)

	events := collectEvents(t, sys, analyses.AnalyzeCommand{
		Instruction: "fix grammatical errors",
		Filename:    "essay.docx",
		Data:        buildDocx(t, "He go to school.", "She like apples."),
	})

	want := []string{
		analyses.EventAccepted,
		analyses.EventStatus,   // extracting
		analyses.EventStatus,   // normalizing
		analyses.EventStatus,   // revising
		analyses.EventProgress, // 1/2
		analyses.EventProgress, // 2/2
		analyses.EventStatus,   // presenting
		analyses.EventParagraph,
		analyses.EventParagraph,
		analyses.EventComplete,
	}

	got := eventNames(events)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("event sequence: got %v, want %v", got, want)
	}

	first, ok := events[7].Data.(workflow.ParagraphResult)
	if !ok {
		t.Fatalf("paragraph event data: got %T", events[7].Data)
	}
	if first.Index != 1 {
		t.Errorf("first paragraph index: got %d, want 1", first.Index)
	}
	if first.Revised != "He goes to school." {
		t.Errorf("first paragraph revised: got %q", first.Revised)
	}

	second, ok := events[8].Data.(workflow.ParagraphResult)
	if !ok {
		t.Fatalf("paragraph event data: got %T", events[8].Data)
	}
	if second.Index != 2 {
		t.Errorf("second paragraph index: got %d, want 2", second.Index)
	}
}

func TestAnalyzeProgressCounts(t *testing.T) {
	sys := analyses.New(&fakeGenerator{}, testLogger(), 1)

	events := collectEvents(t, sys, analyses.AnalyzeCommand{
		Instruction: "fix grammatical errors",
		Filename:    "essay.docx",
		Data:        buildDocx(t, "First.", "Second.", "Third."),
	})

	var progress []map[string]any
	for _, event := range events {
		if event.Name == analyses.EventProgress {
			progress = append(progress, event.Data.(map[string]any))
		}
	}

	if len(progress) != 3 {
		t.Fatalf("progress events: got %d, want 3", len(progress))
	}
	for i, p := range progress {
		if completed := p["completed"].(int); completed != i+1 {
			t.Errorf("progress %d completed: got %d, want %d", i, completed, i+1)
		}
		if total := p["total"].(int); total != 3 {
			t.Errorf("progress %d total: got %d, want 3", i, total)
		}
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	sys := analyses.New(&fakeGenerator{}, testLogger(), 1)

	events := collectEvents(t, sys, analyses.AnalyzeCommand{
		Instruction: "fix grammatical errors",
		Filename:    "blank.docx",
		Data:        buildDocx(t, "   "),
	})

	last := events[len(events)-1]
	if last.Name != analyses.EventWarning {
		t.Fatalf("terminal event: got %s, want %s", last.Name, analyses.EventWarning)
	}
	for _, event := range events {
		if event.Name == analyses.EventParagraph || event.Name == analyses.EventComplete {
			t.Errorf("unexpected %s event for empty document", event.Name)
		}
	}
}

func TestAnalyzeGenerativeFailure(t *testing.T) {
	boom := errors.New("provider unavailable")
	sys := analyses.New(&fakeGenerator{err: boom}, testLogger(), 1)

	events := collectEvents(t, sys, analyses.AnalyzeCommand{
		Instruction: "fix grammatical errors",
		Filename:    "essay.docx",
		Data:        buildDocx(t, "Some paragraph."),
	})

	last := events[len(events)-1]
	if last.Name != analyses.EventError {
		t.Fatalf("terminal event: got %s, want %s", last.Name, analyses.EventError)
	}

	message := last.Data.(map[string]any)["message"].(string)
	if !strings.Contains(message, "provider unavailable") {
		t.Errorf("error message: got %q", message)
	}

	for _, event := range events {
		if event.Name == analyses.EventParagraph {
			t.Error("no paragraph events should follow a failed run")
		}
	}
}

func TestAnalyzeCorruptUpload(t *testing.T) {
	sys := analyses.New(&fakeGenerator{}, testLogger(), 1)

	events := collectEvents(t, sys, analyses.AnalyzeCommand{
		Instruction: "fix grammatical errors",
		Filename:    "broken.docx",
		Data:        []byte("not a zip archive"),
	})

	last := events[len(events)-1]
	if last.Name != analyses.EventError {
		t.Fatalf("terminal event: got %s, want %s", last.Name, analyses.EventError)
	}
}
