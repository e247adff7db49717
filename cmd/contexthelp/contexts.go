package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-h/contexthelp/content"
	"gopkg.in/yaml.v3"
)

type ContextsCommand struct {
	AppRoot       string `help:"The application root that relative paths are resolved against." env:"APP_ROOT" default:"."`
	ContentDir    string `help:"The directory containing help content." env:"CONTENT_DIR" default:"wwwroot/content"`
	ContentFormat string `help:"The format of the help content." env:"CONTENT_FORMAT" enum:"markdown,html" default:"markdown"`
}

type contextListing struct {
	Dir      string         `yaml:"dir"`
	Format   string         `yaml:"format"`
	Contexts []contextEntry `yaml:"contexts"`
}

type contextEntry struct {
	Key  string `yaml:"key"`
	File string `yaml:"file"`
}

func (c ContextsCommand) Run(ctx context.Context) (err error) {
	dir := resolveContentDir(c.AppRoot, c.ContentDir)
	index, err := content.BuildIndex(dir, content.Format(c.ContentFormat).Extensions()...)
	if err != nil {
		return fmt.Errorf("failed to index content: %w", err)
	}
	listing := newContextListing(index, c.ContentFormat)
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(listing)
}

func newContextListing(index *content.Index, format string) contextListing {
	listing := contextListing{
		Dir:      index.Dir(),
		Format:   format,
		Contexts: []contextEntry{},
	}
	for _, key := range index.Keys() {
		path, _ := index.Lookup(key)
		listing.Contexts = append(listing.Contexts, contextEntry{
			Key:  key,
			File: filepath.Base(path),
		})
	}
	return listing
}

func resolveContentDir(appRoot, contentDir string) string {
	if filepath.IsAbs(contentDir) {
		return contentDir
	}
	return filepath.Join(appRoot, contentDir)
}
