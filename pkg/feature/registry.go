package feature

import (
	"fmt"
	"maps"
	"slices"

	"github.com/simplesurance/buildplus/internal/set"
)

// Policy defines if features that have not been explicitly activated or
// deactivated are considered active.
type Policy int

const (
	// AutoActivate considers every feature active unless it was deactivated.
	AutoActivate Policy = iota
	// OptIn considers only explicitly activated features as active.
	OptIn
)

func (p Policy) String() string {
	switch p {
	case AutoActivate:
		return "auto-activate"
	case OptIn:
		return "opt-in"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

type Logger interface {
	Debugf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}

// Option configures a Registry.
type Option func(*Registry)

// WithPolicy sets the default activation policy, the default is AutoActivate.
func WithPolicy(p Policy) Option {
	return func(r *Registry) {
		r.policy = p
	}
}

// WithStrictPrerequisites enables enforcing that all prerequisites of an
// active feature are active too. Registry.Validate returns a
// PrerequisiteInactiveError otherwise.
func WithStrictPrerequisites() Option {
	return func(r *Registry) {
		r.strict = true
	}
}

func WithLogger(logger Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry holds features and their activation state.
// It is not safe for concurrent use. It is populated before the composition
// pass and read-only after Freeze was called.
type Registry struct {
	logger Logger
	policy Policy
	strict bool
	frozen bool

	features []*Feature
	byName   map[string]*Feature
	flags    map[string]bool
}

func NewRegistry(opts ...Option) *Registry {
	r := Registry{
		logger: nopLogger{},
		policy: AutoActivate,
		byName: map[string]*Feature{},
		flags:  map[string]bool{},
	}

	for _, opt := range opts {
		opt(&r)
	}

	return &r
}

// Policy returns the default activation policy.
func (r *Registry) Policy() Policy {
	return r.policy
}

// SetPolicy changes the default activation policy.
func (r *Registry) SetPolicy(p Policy) error {
	if r.frozen {
		return ErrFrozen
	}

	r.policy = p
	return nil
}

// Strict returns true if prerequisites are enforced.
func (r *Registry) Strict() bool {
	return r.strict
}

// Register adds a feature.
// If a feature with the same name exists a DuplicateFeatureError is returned.
// Prerequisites do not have to be registered yet, they are checked by
// Validate.
func (r *Registry) Register(name string, prerequisites ...string) (*Feature, error) {
	if r.frozen {
		return nil, ErrFrozen
	}

	if err := validateName(name); err != nil {
		return nil, fmt.Errorf("feature name %q: %w", name, err)
	}

	if _, exist := r.byName[name]; exist {
		return nil, &DuplicateFeatureError{Name: name}
	}

	for _, p := range prerequisites {
		if err := validateName(p); err != nil {
			return nil, fmt.Errorf("feature %q: prerequisite name %q: %w", name, p, err)
		}
	}

	f := Feature{
		name:          name,
		prerequisites: slices.Clone(prerequisites),
	}

	r.features = append(r.features, &f)
	r.byName[name] = &f

	r.logger.Debugf("feature: registered %q, prerequisites: %q", name, prerequisites)

	return &f, nil
}

// Enhance appends contribution to the enhancements of the feature called
// name. If the feature is not registered an UnknownFeatureError is returned.
// The extension point of contribution must match point.
func (r *Registry) Enhance(name string, point ExtensionPoint, contribution Contribution) error {
	if r.frozen {
		return ErrFrozen
	}

	f, exist := r.byName[name]
	if !exist {
		return &UnknownFeatureError{Name: name}
	}

	if contribution == nil {
		return fmt.Errorf("feature %q: contribution for extension point %q is nil", name, point)
	}

	if cp := contribution.ExtensionPoint(); cp != point {
		return fmt.Errorf("feature %q: contribution %T is for extension point %q, not %q",
			name, contribution, cp, point)
	}

	f.enhancements = append(f.enhancements, &Enhancement{
		Point:        point,
		Contribution: contribution,
	})

	r.logger.Debugf("feature: %q enhances %q", name, point)

	return nil
}

// Activate marks the feature as active.
// The contributions of the feature are not applied, this is done by the
// composition pass.
func (r *Registry) Activate(name string) error {
	return r.setFlag(name, true)
}

// Deactivate marks the feature as inactive.
func (r *Registry) Deactivate(name string) error {
	return r.setFlag(name, false)
}

func (r *Registry) setFlag(name string, active bool) error {
	if r.frozen {
		return ErrFrozen
	}

	r.flags[name] = active
	r.logger.Debugf("feature: %q active: %t", name, active)

	return nil
}

// Activated returns true if the feature is active.
// Features without an explicit activation state, including features that are
// not registered, resolve to the default policy: true for AutoActivate, false
// for OptIn.
func (r *Registry) Activated(name string) bool {
	if active, exist := r.flags[name]; exist {
		return active
	}

	return r.policy == AutoActivate
}

// AutoActivate activates all registered features that have not been
// explicitly activated or deactivated, if the policy is AutoActivate.
// With the OptIn policy it does nothing.
func (r *Registry) AutoActivate() error {
	if r.policy != AutoActivate {
		return nil
	}

	if r.frozen {
		return ErrFrozen
	}

	for _, f := range r.features {
		if _, exist := r.flags[f.name]; exist {
			continue
		}

		r.flags[f.name] = true
	}

	return nil
}

// Lookup returns the feature called name.
func (r *Registry) Lookup(name string) (*Feature, bool) {
	f, exist := r.byName[name]
	return f, exist
}

// Features returns all registered features in registration order.
func (r *Registry) Features() []*Feature {
	return slices.Clone(r.features)
}

// Active returns the active registered features in registration order.
func (r *Registry) Active() []*Feature {
	var result []*Feature

	for _, f := range r.features {
		if r.Activated(f.name) {
			result = append(result, f)
		}
	}

	return result
}

// Contributions returns the contributions for point of all active features.
// Features are traversed in registration order, the contributions of a
// feature in the order they were added.
func (r *Registry) Contributions(point ExtensionPoint) []Contribution {
	var result []Contribution

	for _, f := range r.Active() {
		for _, e := range f.enhancements {
			if e.Point == point {
				result = append(result, e.Contribution)
			}
		}
	}

	return result
}

// Snapshot returns the current activation state.
func (r *Registry) Snapshot() *Snapshot {
	active := set.Set[string]{}
	for name, isActive := range r.flags {
		if isActive {
			active.Add(name)
		}
	}

	var ordered []string
	for _, f := range r.Active() {
		ordered = append(ordered, f.name)
	}

	return &Snapshot{
		policy:   r.policy,
		explicit: copyFlags(r.flags),
		active:   active,
		ordered:  ordered,
	}
}

// Validate ensures that all prerequisites of all features are registered.
// In strict mode it also ensures that all prerequisites of active features are
// active.
func (r *Registry) Validate() error {
	for _, f := range r.features {
		for _, p := range f.prerequisites {
			if _, exist := r.byName[p]; !exist {
				return &UnknownFeatureError{Name: p, Referrer: f.name}
			}
		}
	}

	if !r.strict {
		return nil
	}

	if unmet := r.UnmetPrerequisites(); len(unmet) > 0 {
		return unmet[0]
	}

	return nil
}

// UnmetPrerequisites returns an error for every prerequisite of an active
// feature that is not active.
func (r *Registry) UnmetPrerequisites() []*PrerequisiteInactiveError {
	var result []*PrerequisiteInactiveError

	for _, f := range r.Active() {
		for _, p := range f.prerequisites {
			if !r.Activated(p) {
				result = append(result, &PrerequisiteInactiveError{Feature: f.name, Prerequisite: p})
			}
		}
	}

	return result
}

// Freeze makes the registry read-only.
// All further modifications fail with ErrFrozen.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen returns true if Freeze was called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

func copyFlags(m map[string]bool) map[string]bool {
	result := make(map[string]bool, len(m))
	maps.Copy(result, m)

	return result
}
