package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Key maps a context identifier to the file name (without extension) that
// holds its content, e.g. "bet-slip/empty" becomes "bet-slip-empty".
func Key(contextID string) string {
	return strings.ReplaceAll(contextID, "/", "-")
}

// Index maps content keys to files in the content directory. It is built once
// and is safe for concurrent use because it is never modified afterwards.
type Index struct {
	dir   string
	paths map[string]string
}

// BuildIndex scans dir for regular files with one of the given extensions.
// Extensions are compared case-insensitively. When more than one file maps
// to the same key, the lexicographically first file name wins. A missing
// directory produces an empty index.
func BuildIndex(dir string, extensions ...string) (*Index, error) {
	idx := &Index{
		dir:   dir,
		paths: make(map[string]string),
	}
	// os.ReadDir returns entries sorted by file name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return idx, nil
		}
		return nil, fmt.Errorf("content: failed to read directory %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !hasExtension(ext, extensions) {
			continue
		}
		key := strings.TrimSuffix(name, ext)
		if key == "" {
			continue
		}
		if _, exists := idx.paths[key]; exists {
			continue
		}
		idx.paths[key] = filepath.Join(dir, name)
	}
	return idx, nil
}

func hasExtension(ext string, extensions []string) bool {
	for _, e := range extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Lookup returns the path of the file holding the content for contextID.
func (idx *Index) Lookup(contextID string) (path string, ok bool) {
	if strings.TrimSpace(contextID) == "" {
		return "", false
	}
	path, ok = idx.paths[Key(contextID)]
	return path, ok
}

func (idx *Index) Dir() string {
	return idx.dir
}

func (idx *Index) Len() int {
	return len(idx.paths)
}

// Keys returns the indexed keys in sorted order.
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.paths))
	for k := range idx.paths {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
