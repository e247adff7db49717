package answer

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Mock answers by reversing the question. It makes no external calls.
type Mock struct{}

func (Mock) Answer(ctx context.Context, question, contextID string) (answer string, err error) {
	if err = ctx.Err(); err != nil {
		return "", fmt.Errorf("answer: %w", err)
	}
	if strings.TrimSpace(contextID) == "" {
		contextID = "none"
	}
	return fmt.Sprintf("Mock answer (context: %s): %s", contextID, reverse(question)), nil
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}
