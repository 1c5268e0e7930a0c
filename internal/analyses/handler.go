package analyses

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/redline/internal/extract"
	"github.com/JaimeStill/redline/pkg/handlers"
	"github.com/JaimeStill/redline/pkg/routes"
)

// Handler provides HTTP endpoints for analysis operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload
// size limit.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "analyses"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for analysis endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/analyses",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Analyze},
		},
	}
}

// Analyze accepts a multipart form with an instruction and a document
// upload, validates both before any generative call, and streams the run
// as server-sent events. Validation failures respond with a JSON error
// before the stream begins.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	cmd, err := h.parseForm(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		handlers.RespondError(
			w, h.logger,
			http.StatusInternalServerError,
			fmt.Errorf("streaming unsupported"),
		)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		h.sys.Analyze(r.Context(), *cmd, events)
	}()

	for event := range events {
		writeEvent(w, flusher, event)
	}
}

func (h *Handler) parseForm(r *http.Request) (*AnalyzeCommand, error) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return nil, ErrFileTooLarge
	}

	instruction := strings.TrimSpace(r.FormValue("instruction"))
	if instruction == "" {
		return nil, ErrMissingInstruction
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, ErrMissingDocument
	}
	defer file.Close()

	// cheap local validation precedes all generative calls
	if _, err := extract.DetectKind(header.Filename); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, ErrMissingDocument
	}

	return &AnalyzeCommand{
		Instruction: instruction,
		Filename:    header.Filename,
		Data:        data,
	}, nil
}

func writeEvent(w http.ResponseWriter, flusher http.Flusher, event Event) {
	payload, err := json.Marshal(event.Data)
	if err != nil {
		payload = []byte(`{"message":"event serialization failed"}`)
	}

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
	flusher.Flush()
}
