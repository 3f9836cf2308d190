// Package tarball builds tar streams from the filesystem and unpacks
// them back, keeping entry order deterministic in both directions.
package tarball

import (
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one file scheduled for archiving: where it lives on disk
// and the name it gets inside the archive.
type Entry struct {
	ArcName string // slash-separated name inside the archive
	Path    string // source path on disk
	Size    int64
}

// Collect enumerates the regular files under src. A file source yields
// a single entry named by its base name; a directory source yields one
// entry per file, named relative to src. The walk visits paths in
// lexical order, so the same tree always collects in the same order.
func Collect(src string) ([]Entry, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return []Entry{{ArcName: filepath.Base(src), Path: src, Size: info.Size()}}, nil
	}

	var entries []Entry
	err = filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		entries = append(entries, Entry{
			ArcName: filepath.ToSlash(rel),
			Path:    path,
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", src, err)
	}
	return entries, nil
}

// TotalSize sums the sizes of the collected entries.
func TotalSize(entries []Entry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
