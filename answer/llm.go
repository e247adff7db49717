package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
)

const DefaultTimeout = 30 * time.Second

type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

const systemPrompt = `You are a helpful sportsbook assistant. Answer questions about using the sportsbook clearly and briefly.`

// SystemPrompt returns the instruction sent with every question.
func SystemPrompt(contextID string) string {
	if strings.TrimSpace(contextID) == "" {
		return systemPrompt
	}
	return fmt.Sprintf("%s The user is currently in the '%s' area.", systemPrompt, contextID)
}

// NewLLM creates an Answerer backed by a chat model. A nil model is allowed
// so that the server can start without credentials: a warning is logged and
// every call to Answer returns ErrConfiguration.
func NewLLM(log *slog.Logger, model llms.Model, cfg Config) LLM {
	if model == nil {
		log.Warn("chat model is not configured, questions will fail until an API key is provided")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return LLM{
		log:   log,
		model: model,
		cfg:   cfg,
	}
}

type LLM struct {
	log   *slog.Logger
	model llms.Model
	cfg   Config
}

var errCallTimeout = errors.New("answer: call timeout")

func (l LLM) Answer(ctx context.Context, question, contextID string) (answer string, err error) {
	if l.model == nil {
		return "", fmt.Errorf("%w: chat model requires an API key", ErrConfiguration)
	}

	callCtx, cancel := context.WithTimeoutCause(ctx, l.cfg.Timeout, errCallTimeout)
	defer cancel()

	l.log.Debug("generating answer", slog.String("context", contextID), slog.Duration("timeout", l.cfg.Timeout))
	resp, err := l.model.GenerateContent(callCtx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, SystemPrompt(contextID)),
		llms.TextParts(llms.ChatMessageTypeHuman, question),
	}, llms.WithMaxTokens(l.cfg.MaxTokens), llms.WithTemperature(l.cfg.Temperature))
	if err != nil {
		return "", classify(callCtx, err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", fmt.Errorf("%w: no choices returned", ErrGenerationFailed)
	}
	return resp.Choices[0].Content, nil
}

// classify tells the internal timeout apart from cancellation of the parent
// context by the caller.
func classify(callCtx context.Context, err error) error {
	cause := context.Cause(callCtx)
	switch {
	case errors.Is(cause, errCallTimeout):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case cause != nil:
		return fmt.Errorf("answer: %w", cause)
	}
	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}
