package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/a-h/contexthelp/client"
)

type ArticleCommand struct {
	ServerURL string `help:"The URL of the context help server." env:"CONTEXT_HELP_SERVER_URL" default:"http://localhost:9020"`
	Context   string `help:"The context to get help for, e.g. bet-slip/empty." required:""`
	Pretty    bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c ArticleCommand) Run(ctx context.Context) (err error) {
	chc := client.New(c.ServerURL)
	articles, ok, err := chc.Article(ctx, c.Context)
	if err != nil {
		return fmt.Errorf("failed to get article: %w", err)
	}
	if !ok {
		return fmt.Errorf("no help content for context %q", c.Context)
	}

	enc := json.NewEncoder(os.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(articles)
}
