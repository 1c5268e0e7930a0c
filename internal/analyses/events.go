package analyses

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/redline/internal/workflow"
)

// Event is one message on an analysis run's server-sent event stream.
type Event struct {
	Name string
	Data any
}

// Event names emitted over the stream.
const (
	EventAccepted  = "accepted"
	EventStatus    = "status"
	EventProgress  = "progress"
	EventParagraph = "paragraph"
	EventComplete  = "complete"
	EventWarning   = "warning"
	EventError     = "error"
)

// AcceptedEvent signals that a run has started.
func AcceptedEvent(id uuid.UUID, filename string) Event {
	return Event{
		Name: EventAccepted,
		Data: map[string]any{
			"analysis_id": id,
			"filename":    filename,
		},
	}
}

// StatusEvent reports the pipeline stage currently running.
func StatusEvent(stage string) Event {
	return Event{
		Name: EventStatus,
		Data: map[string]any{"stage": stage},
	}
}

// ProgressEvent reports the revision fraction after a completed paragraph.
func ProgressEvent(completed, total int) Event {
	return Event{
		Name: EventProgress,
		Data: map[string]any{
			"completed": completed,
			"total":     total,
		},
	}
}

// ParagraphEvent carries one paragraph's revision result and diff.
func ParagraphEvent(result workflow.ParagraphResult) Event {
	return Event{
		Name: EventParagraph,
		Data: result,
	}
}

// CompleteEvent terminates a successful run.
func CompleteEvent(result *workflow.AnalysisResult) Event {
	data := map[string]any{
		"analysis_id":     result.ID,
		"paragraph_count": len(result.Paragraphs),
		"completed_at":    result.CompletedAt.Format(time.RFC3339),
	}
	if result.PageCount != nil {
		data["page_count"] = *result.PageCount
	}
	return Event{
		Name: EventComplete,
		Data: data,
	}
}

// WarningEvent terminates a run that produced nothing to process.
func WarningEvent(message string) Event {
	return Event{
		Name: EventWarning,
		Data: map[string]any{"message": message},
	}
}

// ErrorEvent terminates a failed run. The process stays up; the user may
// resubmit a fresh run.
func ErrorEvent(err error) Event {
	return Event{
		Name: EventError,
		Data: map[string]any{"message": err.Error()},
	}
}
