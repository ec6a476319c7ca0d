// Package cfg implements the buildplus configuration file parser.
package cfg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type toFileOpts struct {
	overwrite bool
	commented bool
}

// toFileOpt is an option that can be passed to the ToFile functions
type toFileOpt func(*toFileOpts)

// ToFileOptOverwrite overwrite an existing file instead of returning an error
func ToFileOptOverwrite() toFileOpt { //nolint: revive // returns unexported type
	return func(o *toFileOpts) {
		o.overwrite = true
	}
}

// ToFileOptCommented comment every line in the config
func ToFileOptCommented() toFileOpt { //nolint: revive // returns unexported type
	return func(o *toFileOpts) {
		o.commented = true
	}
}

// toFile marshals a struct to TOML format and writes it to a file.
func toFile(data any, filepath string, opts ...toFileOpt) error {
	var buf bytes.Buffer
	var settings toFileOpts

	for _, opt := range opts {
		opt(&settings)
	}

	err := toml.NewEncoder(&buf).
		SetArraysMultiline(true).
		SetIndentTables(true).
		Encode(data)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath, fileOpenFlags(settings.overwrite), 0o640)
	if err != nil {
		return err
	}

	if settings.commented {
		err = writeCommented(f, &buf)
	} else {
		_, err = io.Copy(f, &buf)
	}
	if err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file failed: %w", err)
	}

	return nil
}

// fromFile reads the TOML file at path into data.
// Keys that do not exist in data are reported as error.
func fromFile(path string, data any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	err = toml.NewDecoder(bytes.NewReader(content)).
		DisallowUnknownFields().
		Decode(data)
	if err != nil {
		return fmt.Errorf("parsing %s failed: %w", path, err)
	}

	return nil
}

func fileOpenFlags(overwrite bool) int {
	if overwrite {
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	return os.O_WRONLY | os.O_CREATE | os.O_EXCL
}

func writeCommented(out io.Writer, in io.Reader) error {
	s := bufio.NewScanner(in)

	for s.Scan() {
		line := s.Text()

		if line == "" {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(out, "# %s\n", line); err != nil {
			return err
		}
	}

	return s.Err()
}
