package revision

import "errors"

// ErrGenerateFailed indicates the generative-text capability returned an
// error. It is never retried locally.
var ErrGenerateFailed = errors.New("generative request failed")
