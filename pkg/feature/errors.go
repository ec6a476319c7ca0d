package feature

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned when the registry is modified after the composition
// pass started.
var ErrFrozen = errors.New("feature registry is frozen")

// DuplicateFeatureError is returned when a feature name is registered twice.
type DuplicateFeatureError struct {
	Name string
}

func (e *DuplicateFeatureError) Error() string {
	return fmt.Sprintf("feature %q is already registered, feature names must be unique", e.Name)
}

// UnknownFeatureError is returned when a feature is referenced that was never
// registered.
// Referrer is the name of the feature that referenced it as prerequisite, it
// is empty when the reference did not originate from another feature.
type UnknownFeatureError struct {
	Name     string
	Referrer string
}

func (e *UnknownFeatureError) Error() string {
	if e.Referrer != "" {
		return fmt.Sprintf("feature %q: prerequisite %q is not registered", e.Referrer, e.Name)
	}

	return fmt.Sprintf("feature %q is not registered", e.Name)
}

// PrerequisiteInactiveError is returned in strict mode when an active feature
// has a prerequisite that is not active.
type PrerequisiteInactiveError struct {
	Feature      string
	Prerequisite string
}

func (e *PrerequisiteInactiveError) Error() string {
	return fmt.Sprintf("feature %q is active but its prerequisite %q is not", e.Feature, e.Prerequisite)
}
