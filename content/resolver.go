package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type Article struct {
	Title   string
	Content string
}

// Resolver finds the help article for a context identifier.
// ok is false when no content matches. err is only set when matching content
// exists but could not be read.
type Resolver interface {
	Resolve(ctx context.Context, contextID string) (article Article, ok bool, err error)
}

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

func (f Format) Extensions() []string {
	switch f {
	case FormatHTML:
		return []string{".html"}
	default:
		return []string{".md"}
	}
}

// NewResolver creates the resolver for the content format.
func NewResolver(format Format, index *Index) (Resolver, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownResolver(index), nil
	case FormatHTML:
		return NewHTMLResolver(index), nil
	}
	return nil, fmt.Errorf("content: unknown format %q", format)
}

func NewMarkdownResolver(index *Index) MarkdownResolver {
	return MarkdownResolver{index: index}
}

// MarkdownResolver serves .md files converted to HTML.
type MarkdownResolver struct {
	index *Index
}

func (r MarkdownResolver) Resolve(ctx context.Context, contextID string) (article Article, ok bool, err error) {
	path, ok := r.index.Lookup(contextID)
	if !ok {
		return article, false, nil
	}
	text, ok, err := readFile(ctx, path)
	if err != nil || !ok {
		return article, false, err
	}
	article.Title = MarkdownTitle(text, baseName(path))
	article.Content = MarkdownToHTML(text)
	return article, true, nil
}

func NewHTMLResolver(index *Index) HTMLResolver {
	return HTMLResolver{index: index}
}

// HTMLResolver serves pre-rendered .html files as-is.
type HTMLResolver struct {
	index *Index
}

func (r HTMLResolver) Resolve(ctx context.Context, contextID string) (article Article, ok bool, err error) {
	path, ok := r.index.Lookup(contextID)
	if !ok {
		return article, false, nil
	}
	text, ok, err := readFile(ctx, path)
	if err != nil || !ok {
		return article, false, err
	}
	article.Title = HTMLTitle(text, baseName(path))
	article.Content = text
	return article, true, nil
}

// readFile returns ok false if the file was removed after indexing.
func readFile(ctx context.Context, path string) (text string, ok bool, err error) {
	if err = ctx.Err(); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("content: failed to read %q: %w", path, err)
	}
	return string(b), true, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
