// Package scanner enumerates candidate source files under a project root.
package scanner

import (
	"io/fs"
	"path/filepath"
)

// Scanner walks a directory tree and yields source file paths, pruning
// ignored directories before descending into them.
type Scanner struct {
	ignoreDirs map[string]struct{}
	extensions map[string]struct{}
}

// New creates a scanner for the given ignore-directory names and recognized
// source extensions (with leading dot, e.g. ".ts").
func New(ignoreDirs, extensions []string) *Scanner {
	s := &Scanner{
		ignoreDirs: make(map[string]struct{}, len(ignoreDirs)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, d := range ignoreDirs {
		s.ignoreDirs[d] = struct{}{}
	}
	for _, e := range extensions {
		s.extensions[e] = struct{}{}
	}
	return s
}

// SourceFiles returns all source file paths under root, in walk order.
// Unreadable directories are skipped silently; the enumeration itself has no
// side effects and can be rerun.
func (s *Scanner) SourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			// Prune before descending so huge ignored trees are never walked.
			if _, ignored := s.ignoreDirs[d.Name()]; ignored && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if _, ok := s.extensions[filepath.Ext(path)]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
