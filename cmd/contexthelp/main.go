package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Serve    ServeCommand    `cmd:"serve" help:"Start the context help server."`
	Article  ArticleCommand  `cmd:"article" help:"Get the help article for a context."`
	Query    QueryCommand    `cmd:"query" help:"Ask the context help server a question."`
	Chat     ChatCommand     `cmd:"chat" help:"Ask questions interactively."`
	Contexts ContextsCommand `cmd:"contexts" help:"List the contexts that have help content."`
	Import   ImportCommand   `cmd:"import" help:"Import help content from Pocketbase into the content directory."`
	Version  VersionCommand  `cmd:"version" help:"Print the version of the context help server."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: ll,
	}))
}
