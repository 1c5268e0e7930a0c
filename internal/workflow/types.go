// Package workflow implements the document analysis pipeline for Redline
// as a 4-node state graph: extract → normalize → revise → present. It
// provides the runtime bundle, pipeline types, and result extraction.
package workflow

import (
	"time"

	"github.com/google/uuid"
)

// State keys for values carried between pipeline nodes.
const (
	KeyAnalysisID  = "analysis_id"
	KeyFilename    = "filename"
	KeyInstruction = "instruction"
	KeyUpload      = "upload"
	KeyText        = "text"
	KeyPageCount   = "page_count"
	KeyParagraphs  = "paragraphs"
	KeyPairs       = "pairs"
	KeyResults     = "results"
)

// Stage names reported through Runtime.OnStage as nodes begin work.
const (
	StageExtract   = "extracting"
	StageNormalize = "normalizing"
	StageRevise    = "revising"
	StagePresent   = "presenting"
)

// Request carries the inputs for one analysis run. Data holds the raw
// upload bytes; nothing in a Request outlives the run.
type Request struct {
	ID          uuid.UUID
	Filename    string
	Instruction string
	Data        []byte
}

// ParagraphResult is one paragraph's revision outcome. Index is 1-based
// and matches the paragraph's position in the source document.
type ParagraphResult struct {
	Index    int    `json:"index"`
	Original string `json:"original"`
	Revised  string `json:"revised"`
	Diff     string `json:"diff"`
}

// AnalysisResult is the final output of an analysis run. A run with zero
// paragraphs is a valid result, not an error; callers report it as
// nothing to process.
type AnalysisResult struct {
	ID          uuid.UUID         `json:"id"`
	Filename    string            `json:"filename"`
	Instruction string            `json:"instruction"`
	PageCount   *int              `json:"page_count,omitempty"`
	Paragraphs  []ParagraphResult `json:"paragraphs"`
	CompletedAt time.Time         `json:"completed_at"`
}

// Empty reports whether the run produced no paragraphs to revise.
func (r *AnalysisResult) Empty() bool {
	return len(r.Paragraphs) == 0
}
