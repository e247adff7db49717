package main

import (
	"testing"

	"github.com/a-h/contexthelp/content"
	"github.com/google/go-cmp/cmp"
)

func TestImportFileName(t *testing.T) {
	tests := []struct {
		name      string
		contextID string
		expected  string
		expectErr bool
	}{
		{
			name:      "slashes are replaced with hyphens",
			contextID: "bet-slip/empty",
			expected:  "bet-slip-empty.md",
		},
		{
			name:      "empty contexts are rejected",
			contextID: "  ",
			expectErr: true,
		},
		{
			name:      "parent directory references are rejected",
			contextID: "../secrets",
			expectErr: true,
		},
		{
			name:      "backslashes are rejected",
			contextID: `a\b`,
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := importFileName(tt.contextID)
			if tt.expectErr {
				if err == nil {
					t.Errorf("expected error, got %q", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, actual)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	actual := renderMarkdown(" How to Place a Bet ", "Select odds and confirm.\n\n")
	expected := "# How to Place a Bet\n\nSelect odds and confirm.\n"
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}

	t.Run("imported markdown resolves to the same title", func(t *testing.T) {
		if title := content.MarkdownTitle(actual, "fallback"); title != "How to Place a Bet" {
			t.Errorf("unexpected title %q", title)
		}
	})
	t.Run("records without a title have no heading", func(t *testing.T) {
		if actual := renderMarkdown("", "Body"); actual != "Body\n" {
			t.Errorf("unexpected output %q", actual)
		}
	})
}

func TestNewExportedArticle(t *testing.T) {
	actual := newExportedArticle(map[string]any{
		"id":      "abc123",
		"context": "bet-slip/empty",
		"name":    "How to Place a Bet",
		"content": "Select odds and confirm.",
		"created": "2024-01-01",
	})
	expected := ExportedArticle{
		ID:      "abc123",
		Context: "bet-slip/empty",
		Title:   "How to Place a Bet",
		Body:    "Select odds and confirm.",
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Error(diff)
	}
}
