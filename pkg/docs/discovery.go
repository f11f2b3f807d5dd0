package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverDir loads every documentation page directly inside dir (no
// recursion), filtered by Extension and sorted by name for deterministic
// processing order. A missing directory is the caller's error to interpret.
func DiscoverDir(dir string, generated bool) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list documents in %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), Extension) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	documents := make([]*Document, 0, len(names))
	for _, name := range names {
		doc, err := Load(filepath.Join(dir, name), generated)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	return documents, nil
}
