package fs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// DirGlob returns the paths of the files in dir that match pattern.
// The returned paths are relative to dir and use '/' as separator.
// If dir does not exist, an empty slice is returned.
func DirGlob(dir, pattern string) ([]string, error) {
	res, err := doublestar.Glob(
		os.DirFS(dir),
		pattern,
		doublestar.WithFailOnIOErrors(),
		doublestar.WithFilesOnly(),
	)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	return res, nil
}

// MatchGlob returns true if path matches pattern.
// '*' does not match the path separator, '**' matches any number of path
// elements.
func MatchGlob(pattern, path string) (bool, error) {
	return doublestar.PathMatch(pattern, path)
}
