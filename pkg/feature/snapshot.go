package feature

import (
	"slices"

	"github.com/simplesurance/buildplus/internal/set"
)

// Snapshot is an immutable view of the activation state of a Registry.
type Snapshot struct {
	policy   Policy
	explicit map[string]bool
	active   set.Set[string]
	ordered  []string
}

// Activated returns the same result as Registry.Activated at the time the
// snapshot was taken.
func (s *Snapshot) Activated(name string) bool {
	if active, exist := s.explicit[name]; exist {
		return active
	}

	return s.policy == AutoActivate
}

// Names returns the names of the active registered features in registration
// order.
func (s *Snapshot) Names() []string {
	return slices.Clone(s.ordered)
}

// Explicit returns the names of all features that were explicitly activated,
// including features that are not registered, sorted by name.
func (s *Snapshot) Explicit() []string {
	return set.Sorted(s.active)
}
