package workflow

import "errors"

// Sentinel errors for pipeline node failures. Underlying extraction and
// generative errors remain reachable through errors.Is for status mapping.
var (
	ErrExtractFailed   = errors.New("text extraction failed")
	ErrNormalizeFailed = errors.New("paragraph normalization failed")
	ErrReviseFailed    = errors.New("paragraph revision failed")
	ErrPresentFailed   = errors.New("diff rendering failed")
)
