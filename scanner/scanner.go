// Package scanner discovers match-document files on disk.
package scanner

import (
	"os"
	"path/filepath"
	"sort"
)

// FileInfo describes one discovered match-document file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a directory tree collecting files by extension.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New creates a scanner rooted at rootDir. Without explicit extensions
// it looks for the YAML match-document files the checker consumes.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = []string{".yaml", ".yml"}
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns the matching files sorted by path,
// so reports come out in a stable order.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !s.isTargetFile(path) {
			return nil
		}
		files = append(files, FileInfo{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
