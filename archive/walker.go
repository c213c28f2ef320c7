// Package archive reads entries of zip based document containers.
package archive

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	fixzip "github.com/hidez8891/zip"
)

// ErrUnsafePath is returned for entries which could escape extraction
// directory.
var ErrUnsafePath = errors.New("unsafe path (absolute or contains path traversal)")

// WalkFunc is called for each file entry visited by Walk. The archive argument
// contains path to archive passed to Walk. If an error is returned, processing
// stops.
type WalkFunc func(archive string, file *fixzip.File) error

// Walk visits all file entries of the archive which names start with prefix.
// Directory entries are never visited. Any entry with absolute path or ".."
// component stops processing with ErrUnsafePath.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := fixzip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: %w", name, ErrUnsafePath)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadParts returns content of the archive entries with exactly matching
// names. Names not present in archive are absent from result, it is up to
// the caller to decide which parts are mandatory.
func ReadParts(archive string, names ...string) (map[string][]byte, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}

	parts := make(map[string][]byte, len(names))
	err := Walk(archive, "", func(_ string, f *fixzip.File) error {
		if !wanted[f.Name] {
			return nil
		}
		data, err := readFile(f)
		if err != nil {
			return fmt.Errorf("unable to read zip entry %q: %w", f.Name, err)
		}
		parts[f.Name] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

func readFile(f *fixzip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
