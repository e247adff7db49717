package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newMarkdownResolver(t *testing.T, files map[string]string) (MarkdownResolver, string) {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, files)
	idx, err := BuildIndex(dir, FormatMarkdown.Extensions()...)
	if err != nil {
		t.Fatalf("failed to build index: %v", err)
	}
	return NewMarkdownResolver(idx), dir
}

func TestMarkdownResolver(t *testing.T) {
	ctx := context.Background()
	r, dir := newMarkdownResolver(t, map[string]string{
		"bet-slip-empty.md": "# How to Place a Bet\n\nSelect odds and confirm.",
		"no-heading.md":     "Just some text.",
	})

	t.Run("existing content is converted to an article", func(t *testing.T) {
		article, ok, err := r.Resolve(ctx, "bet-slip/empty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected article to be found")
		}
		expected := Article{
			Title:   "How to Place a Bet",
			Content: "<h1>How to Place a Bet</h1>\n<p>Select odds and confirm.</p>\n",
		}
		if diff := cmp.Diff(expected, article); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("resolving twice returns the same article", func(t *testing.T) {
		first, _, err := r.Resolve(ctx, "bet-slip/empty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _, err := r.Resolve(ctx, "bet-slip/empty")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("the file name is the title if there is no heading", func(t *testing.T) {
		article, ok, err := r.Resolve(ctx, "no-heading")
		if err != nil || !ok {
			t.Fatalf("expected article, got ok=%v, err=%v", ok, err)
		}
		if article.Title != "no-heading" {
			t.Errorf("expected title %q, got %q", "no-heading", article.Title)
		}
	})
	t.Run("unknown and empty identifiers are not found", func(t *testing.T) {
		for _, id := range []string{"does-not-exist", "", " \t "} {
			_, ok, err := r.Resolve(ctx, id)
			if err != nil {
				t.Errorf("%q: unexpected error: %v", id, err)
			}
			if ok {
				t.Errorf("%q: expected not found", id)
			}
		}
	})
	t.Run("files removed after indexing are not found", func(t *testing.T) {
		r, dir := newMarkdownResolver(t, map[string]string{"gone.md": "# Gone"})
		if err := os.Remove(filepath.Join(dir, "gone.md")); err != nil {
			t.Fatal(err)
		}
		_, ok, err := r.Resolve(ctx, "gone")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected not found")
		}
	})
	t.Run("read failures are errors, not missing content", func(t *testing.T) {
		r, dir := newMarkdownResolver(t, map[string]string{"broken.md": "# Broken"})
		path := filepath.Join(dir, "broken.md")
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(path, 0o755); err != nil {
			t.Fatal(err)
		}
		_, ok, err := r.Resolve(ctx, "broken")
		if err == nil {
			t.Fatal("expected an error")
		}
		if ok {
			t.Error("expected ok to be false")
		}
	})
	t.Run("source files are not modified", func(t *testing.T) {
		before, err := os.ReadFile(filepath.Join(dir, "bet-slip-empty.md"))
		if err != nil {
			t.Fatal(err)
		}
		if _, _, err = r.Resolve(ctx, "bet-slip/empty"); err != nil {
			t.Fatal(err)
		}
		after, err := os.ReadFile(filepath.Join(dir, "bet-slip-empty.md"))
		if err != nil {
			t.Fatal(err)
		}
		if string(before) != string(after) {
			t.Error("expected file to be unchanged")
		}
	})
}

func TestHTMLResolver(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	page := `<html><head><title>Account</title></head><body><h1>Your &amp; account</h1><p>Details.</p></body></html>`
	writeFiles(t, dir, map[string]string{
		"account-settings.html": page,
		"account-settings.md":   "# Ignored",
		"untitled.html":         "<p>No heading.</p>",
	})
	idx, err := BuildIndex(dir, FormatHTML.Extensions()...)
	if err != nil {
		t.Fatalf("failed to build index: %v", err)
	}
	r := NewHTMLResolver(idx)

	t.Run("html content is returned unchanged with the h1 as title", func(t *testing.T) {
		article, ok, err := r.Resolve(ctx, "account/settings")
		if err != nil || !ok {
			t.Fatalf("expected article, got ok=%v, err=%v", ok, err)
		}
		expected := Article{Title: "Your & account", Content: page}
		if diff := cmp.Diff(expected, article); diff != "" {
			t.Error(diff)
		}
	})
	t.Run("the file name is the title if the page has no h1 or title", func(t *testing.T) {
		article, ok, err := r.Resolve(ctx, "untitled")
		if err != nil || !ok {
			t.Fatalf("expected article, got ok=%v, err=%v", ok, err)
		}
		if article.Title != "untitled" {
			t.Errorf("expected title %q, got %q", "untitled", article.Title)
		}
	})
}

func TestNewResolver(t *testing.T) {
	idx, err := BuildIndex(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewResolver(FormatMarkdown, idx); err != nil {
		t.Errorf("unexpected error for markdown: %v", err)
	}
	if _, err := NewResolver(FormatHTML, idx); err != nil {
		t.Errorf("unexpected error for html: %v", err)
	}
	if _, err := NewResolver(Format("rst"), idx); err == nil {
		t.Error("expected error for unknown format")
	}
}
