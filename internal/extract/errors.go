package extract

import "errors"

// Domain errors for document extraction.
var (
	ErrUnsupportedDocument = errors.New("unsupported document type")
	ErrCorruptDocument     = errors.New("document could not be parsed")
)
