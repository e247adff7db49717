package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/a-h/contexthelp/client"
	"github.com/a-h/contexthelp/models"
)

type QueryCommand struct {
	ServerURL string `help:"The URL of the context help server." env:"CONTEXT_HELP_SERVER_URL" default:"http://localhost:9020"`
	Question  string `help:"The question to ask." short:"q" required:""`
	Context   string `help:"The context the question is asked from." default:""`
	LogLevel  string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c QueryCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)
	if c.Context == "" {
		log.Debug("querying without context")
	}

	chc := client.New(c.ServerURL)
	resp, err := chc.Query(ctx, models.QuestionRequest{
		Question: c.Question,
		Context:  c.Context,
	})
	if err != nil {
		return fmt.Errorf("failed to query: %w", err)
	}
	log.Debug("query complete", slog.String("question", resp.Question))
	fmt.Println(resp.Answer)
	return nil
}
