package cfg

import (
	"errors"
	"fmt"
	"strings"
)

// fieldError describes an error related to an element in a configuration struct.
type fieldError struct {
	elementPath []string
	err         error
}

// newFieldError creates a new fieldError with the given error message and path.
func newFieldError(msg string, path ...string) *fieldError {
	return &fieldError{
		err:         errors.New(msg),
		elementPath: path,
	}
}

// fieldErrorWrap prepends path to the element path of err if it is a
// fieldError, otherwise it wraps err in a new fieldError.
func fieldErrorWrap(err error, path ...string) error {
	var fErr *fieldError
	if errors.As(err, &fErr) {
		fErr.elementPath = append(path, fErr.elementPath...)
		return err
	}

	return &fieldError{
		elementPath: path,
		err:         err,
	}
}

// ElementPath returns the dot-separated path of the configuration element.
func (f *fieldError) ElementPath() string {
	return strings.Join(f.elementPath, ".")
}

func (f *fieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.ElementPath(), f.err)
}

func (f *fieldError) Unwrap() error {
	return f.err
}
