// Package feature implements a registry of named, independently toggleable
// build configuration features.
package feature

import (
	"github.com/simplesurance/buildplus/internal/validation"
)

// ExtensionPoint identifies the target a Contribution is applied to.
type ExtensionPoint string

// Contribution is the behaviour an Enhancement attaches to an extension point.
// The package that owns an extension point defines the concrete types.
type Contribution interface {
	ExtensionPoint() ExtensionPoint
}

// Enhancement is a contribution of a feature to an extension point.
type Enhancement struct {
	Point        ExtensionPoint
	Contribution Contribution
}

// Feature is a named unit of build configuration behaviour.
// Features are only created by a Registry.
type Feature struct {
	name          string
	prerequisites []string
	enhancements  []*Enhancement
}

func (f *Feature) Name() string {
	return f.name
}

// Prerequisites returns the names of the features that f is documented to
// depend on. They are not enforced unless the registry runs in strict mode.
func (f *Feature) Prerequisites() []string {
	return append([]string(nil), f.prerequisites...)
}

// Enhancements returns all enhancements of the feature in registration order.
func (f *Feature) Enhancements() []*Enhancement {
	return append([]*Enhancement(nil), f.enhancements...)
}

// ExtensionPoints returns the distinct extension points the feature
// contributes to, in the order of their first enhancement.
func (f *Feature) ExtensionPoints() []ExtensionPoint {
	var result []ExtensionPoint
	seen := map[ExtensionPoint]struct{}{}

	for _, e := range f.enhancements {
		if _, exist := seen[e.Point]; exist {
			continue
		}

		seen[e.Point] = struct{}{}
		result = append(result, e.Point)
	}

	return result
}

func (f *Feature) String() string {
	return f.name
}

var forbiddenNameRunes = [...]rune{
	'.',
	',',
	'*',
	'#',
}

func validateName(name string) error {
	return validation.Name(name, forbiddenNameRunes[:]...)
}
