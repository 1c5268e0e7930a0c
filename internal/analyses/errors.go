package analyses

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/redline/internal/extract"
	"github.com/JaimeStill/redline/internal/revision"
)

// Domain errors for analysis operations.
var (
	ErrMissingInstruction = errors.New("instruction is required")
	ErrMissingDocument    = errors.New("document upload is required")
	ErrFileTooLarge       = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingInstruction) || errors.Is(err, ErrMissingDocument) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, extract.ErrUnsupportedDocument) || errors.Is(err, extract.ErrCorruptDocument) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, revision.ErrGenerateFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
