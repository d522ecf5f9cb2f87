// Package glob provides pipeline sources for file path matching and
// directory traversal. Traversal stops as soon as the pipeline does.
package glob

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lguimbarda/min-linq/linq/core"
)

// FileInfo contains information about a file or directory.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	Mode    fs.FileMode
	IsDir   bool
	ModTime int64
}

// walk visits root in lexical order, offering every entry to emit.
// Returning true from emit ends the walk with fs.SkipAll.
func walk(root string, emit func(path string, d fs.DirEntry) (bool, error)) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		halt, err := emit(path, d)
		if err != nil {
			return err
		}
		if halt {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("glob: walk %s: %w", root, err)
	}
	return nil
}

func walkPaths(root string, keep func(fs.DirEntry) bool) core.Pipeline[string, string] {
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		return walk(root, func(path string, d fs.DirEntry) (bool, error) {
			if !keep(d) {
				return false, nil
			}
			return stop(path), nil
		})
	}))
}

// Walk creates a Pipeline over every file and directory path under root,
// root included.
func Walk(root string) core.Pipeline[string, string] {
	return walkPaths(root, func(fs.DirEntry) bool { return true })
}

// WalkFiles creates a Pipeline over file paths only (not directories).
func WalkFiles(root string) core.Pipeline[string, string] {
	return walkPaths(root, func(d fs.DirEntry) bool { return !d.IsDir() })
}

// WalkDirs creates a Pipeline over directory paths only.
func WalkDirs(root string) core.Pipeline[string, string] {
	return walkPaths(root, func(d fs.DirEntry) bool { return d.IsDir() })
}

// WalkInfo creates a Pipeline over the FileInfo of every entry under root.
func WalkInfo(root string) core.Pipeline[FileInfo, FileInfo] {
	return core.New[FileInfo](core.DriverFunc[FileInfo](func(stop func(FileInfo) bool) error {
		return walk(root, func(path string, d fs.DirEntry) (bool, error) {
			info, err := d.Info()
			if err != nil {
				return false, err
			}
			return stop(FileInfo{
				Path:    path,
				Name:    info.Name(),
				Size:    info.Size(),
				Mode:    info.Mode(),
				IsDir:   info.IsDir(),
				ModTime: info.ModTime().Unix(),
			}), nil
		})
	}))
}

// Match creates a Pipeline over the paths matching a glob pattern.
// Patterns are matched using filepath.Glob, which resolves every match
// before the first one is offered.
func Match(pattern string) core.Pipeline[string, string] {
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("glob: %w", err)
		}
		for _, match := range matches {
			if stop(match) {
				return nil
			}
		}
		return nil
	}))
}

// Filter keeps the paths whose base name matches pattern. The pattern is
// validated up front so the stage itself cannot fail.
func Filter[S any](p core.Pipeline[S, string], pattern string) (core.Pipeline[S, string], error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return p, fmt.Errorf("glob: pattern %q: %w", pattern, err)
	}
	return p.Filter(func(path string) bool {
		matched, _ := filepath.Match(pattern, filepath.Base(path))
		return matched
	}), nil
}

// listBatch is how many directory entries ListDir reads per call.
const listBatch = 64

// ListDir creates a Pipeline over the immediate children of dir, in
// directory order. Entries are read in small batches, not all at once.
func ListDir(dir string) core.Pipeline[string, string] {
	return core.New[string](core.DriverFunc[string](func(stop func(string) bool) error {
		f, err := os.Open(dir)
		if err != nil {
			return fmt.Errorf("glob: %w", err)
		}
		defer f.Close()
		for {
			entries, err := f.ReadDir(listBatch)
			for _, entry := range entries {
				if stop(filepath.Join(dir, entry.Name())) {
					return nil
				}
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("glob: read dir %s: %w", dir, err)
			}
		}
	}))
}
