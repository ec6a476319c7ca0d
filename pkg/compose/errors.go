package compose

import (
	"errors"
	"fmt"
)

// ErrNotActivated is returned when extensions are applied before the
// Composer was activated.
var ErrNotActivated = errors.New("extensions have not been activated")

// ErrFrozen is returned when extensions are registered after the Composer was
// activated.
var ErrFrozen = errors.New("extension registry is frozen")

type UnknownRoleError struct {
	Role    string
	Project string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("project %q: role %q is not registered", e.Project, e.Role)
}

type DuplicateRoleError struct {
	Role string
}

func (e *DuplicateRoleError) Error() string {
	return fmt.Sprintf("role %q is already registered, role names must be unique", e.Role)
}

// MissingConfigurationError is returned when a required value can not be
// derived for a project and no explicit value was configured.
type MissingConfigurationError struct {
	Project string
	Setting string
	Hint    string
}

func (e *MissingConfigurationError) Error() string {
	msg := fmt.Sprintf("unable to determine %s for project %q", e.Setting, e.Project)
	if e.Hint != "" {
		msg += ", " + e.Hint
	}

	return msg
}
