package errs

import (
	"errors"
)

// Classifier-service sentinels. These never cross the classifier gateway
// boundary: the gateway degrades to a neutral verdict instead of surfacing
// them, so they exist for logging and internal branching only.
var (
	ErrModelTimeout      = errors.New("model request timed out")
	ErrModelUnavailable  = errors.New("model service unavailable")
	ErrMalformedVerdict  = errors.New("malformed model response")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)
