package cfg

import (
	"fmt"
	"strings"

	"github.com/simplesurance/buildplus/internal/validation"
)

var forbiddenNameRunes = [...]rune{
	'.',
	',',
	'*',
	'#',
	':',
}

// validateName validates the name of a project, a role or a feature.
func validateName(name string) error {
	return validation.Name(name, forbiddenNameRunes[:]...)
}

func validateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if err := validateName(name); err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}

		if _, exist := seen[name]; exist {
			return fmt.Errorf("%q is listed multiple times", name)
		}

		seen[name] = struct{}{}
	}

	return nil
}

func validateNonEmpty(elems []string) error {
	for i, e := range elems {
		if strings.TrimSpace(e) == "" {
			return fmt.Errorf("element %d is empty", i)
		}
	}

	return nil
}
