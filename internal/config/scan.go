package config

import (
	"os"
	"path/filepath"
	"sort"
)

// Entry is a regular file discovered in the target directory.
type Entry struct {
	Path string
	Name string
}

// ScanResult holds the results of directory scanning
type ScanResult struct {
	Entries    []Entry
	TotalFiles int
}

// Scan lists the regular files directly inside dir. Subdirectories are not
// traversed. Entries whose type cannot be resolved (dangling symlinks, races
// with concurrent deletes) are skipped silently. Only a failure to read dir
// itself is returned.
func Scan(dir string) (*ScanResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{
		TotalFiles: len(entries),
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if !e.Type().IsRegular() {
			// Symlinks and other non-regular entries: resolve and keep only
			// those that point at a regular file.
			fi, err := os.Stat(path)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}

		result.Entries = append(result.Entries, Entry{Path: path, Name: e.Name()})
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Name < result.Entries[j].Name
	})
	return result, nil
}
