// Package fstest provides test utilties to operate with files and directories
package fstest

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteToFile writes data to a file.
// Directories that are in the path but do not exist are created.
// If an error happens, t.Fatal() is called.
func WriteToFile(t *testing.T, data []byte, path string) {
	t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0o775)
	if err != nil {
		t.Fatal(err)
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
}

// MkdirAll is a wrapper of os.MkdirAll that fails the test if it returns an
// error.
func MkdirAll(t *testing.T, paths ...string) {
	t.Helper()

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o775); err != nil {
			t.Fatal(err)
		}
	}
}

// ReadFile returns the content of the file at path.
// If an error happens, t.Fatal() is called.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}
