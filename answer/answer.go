package answer

import (
	"context"
	"errors"
)

// Answerer produces an answer to a free text question. contextID is the
// optional context the user asked from and may be empty.
type Answerer interface {
	Answer(ctx context.Context, question, contextID string) (answer string, err error)
}

var (
	// ErrConfiguration indicates the answerer is missing required configuration,
	// such as an API key.
	ErrConfiguration = errors.New("answer: not configured")

	// ErrTimeout indicates the answer was not generated within the configured
	// timeout. Cancellation by the caller is reported as context.Canceled instead.
	ErrTimeout = errors.New("answer: timed out")

	// ErrGenerationFailed wraps any other failure to generate an answer.
	ErrGenerationFailed = errors.New("answer: generation failed")
)
