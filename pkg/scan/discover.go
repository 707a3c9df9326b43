package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DiscoverFiles lists the regular files directly inside dir, sorted by name.
// The sorted listing defines the scan's input order and therefore the report
// order. Subdirectories are not descended into. An unreadable directory is a
// startup failure, not a per-file one.
func DiscoverFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}
