package main

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/contexthelp/content"
	"github.com/pluja/pocketbase"
)

type ImportCommand struct {
	PocketbaseURL string `help:"The URL of the Pocketbase server." env:"POCKETBASE_URL" default:"http://localhost:8080"`
	Collection    string `help:"The name of the collection to export from." env:"COLLECTION" default:"help_articles"`
	AppRoot       string `help:"The application root that relative paths are resolved against." env:"APP_ROOT" default:"."`
	ContentDir    string `help:"The directory to write help content to." env:"CONTENT_DIR" default:"wwwroot/content"`
	DryRun        bool   `help:"Do not actually write the files." env:"DRY_RUN" default:"false"`
	LogLevel      string `help:"The log level to use." env:"LOG_LEVEL" default:"info"`
}

func (c ImportCommand) Run(ctx context.Context) (err error) {
	log := getLogger(c.LogLevel)

	dir := resolveContentDir(c.AppRoot, c.ContentDir)
	if !c.DryRun {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create content directory: %w", err)
		}
	}

	pbe := NewPocketbaseExporter(pocketbase.NewClient(c.PocketbaseURL), c.Collection)
	for a := range pbe.Export(ctx) {
		name, err := importFileName(a.Context)
		if err != nil {
			log.Warn("skipping record", slog.String("id", a.ID), slog.Any("error", err))
			continue
		}
		path := filepath.Join(dir, name)
		if c.DryRun {
			log.Info("skipping write in dry run mode", slog.String("context", a.Context), slog.String("path", path))
			continue
		}
		if err = os.WriteFile(path, []byte(renderMarkdown(a.Title, a.Body)), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", path, err)
		}
		log.Info("article imported", slog.String("context", a.Context), slog.String("path", path))
	}
	return pbe.Error
}

func NewPocketbaseExporter(client *pocketbase.Client, collection string) *PocketbaseExporter {
	return &PocketbaseExporter{
		client:     client,
		collection: collection,
		PageSize:   50,
		Error:      nil,
	}
}

type PocketbaseExporter struct {
	client     *pocketbase.Client
	collection string
	PageSize   int
	Error      error
}

type ExportedArticle struct {
	ID      string
	Context string
	Title   string
	Body    string
}

func (p *PocketbaseExporter) Export(ctx context.Context) iter.Seq[ExportedArticle] {
	var page int
	return func(yield func(ExportedArticle) bool) {
		for {
			if ctx.Err() != nil {
				return
			}
			if p.Error != nil {
				return
			}
			page++
			response, err := p.client.List(p.collection, pocketbase.ParamsList{
				Page: page,
				Size: p.PageSize,
				Sort: "context",
			})
			if err != nil {
				p.Error = err
				return
			}
			if len(response.Items) == 0 {
				return
			}
			for _, item := range response.Items {
				if !yield(newExportedArticle(item)) {
					return
				}
			}
		}
	}
}

func newExportedArticle(item map[string]any) ExportedArticle {
	return ExportedArticle{
		ID:      useItemOrDefault(item, []string{"id"}, ""),
		Context: useItemOrDefault(item, []string{"context", "context_id"}, ""),
		Title:   useItemOrDefault(item, []string{"title", "name"}, ""),
		Body:    useItemOrDefault(item, []string{"body", "content", "text"}, ""),
	}
}

func useItemOrDefault(item map[string]any, keys []string, defaultValue string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok {
			return value
		}
	}
	return defaultValue
}

// importFileName returns the content file name for a context identifier.
func importFileName(contextID string) (string, error) {
	if strings.TrimSpace(contextID) == "" {
		return "", fmt.Errorf("empty context")
	}
	key := content.Key(contextID)
	if strings.ContainsAny(key, `\:`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("context %q is not a valid file name", contextID)
	}
	return key + ".md", nil
}

func renderMarkdown(title, body string) string {
	var sb strings.Builder
	if title = strings.TrimSpace(title); title != "" {
		sb.WriteString("# ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	if body = strings.TrimSpace(body); body != "" {
		sb.WriteString(body)
		sb.WriteString("\n")
	}
	return sb.String()
}
