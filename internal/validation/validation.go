// Package validation provides checks for identifiers in configuration files.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// StrID ensures that id does not contain leading or trailing white spaces
// ([unicode.IsSpace] and only printable characters ([unicode.IsPrint].
func StrID(id string) error {
	for pos, r := range id {
		if (pos == 0 || pos == len(id)-1) && unicode.IsSpace(r) {
			return errors.New("contains leading or trailing white spaces")
		}

		if !unicode.IsPrint(r) {
			return fmt.Errorf("contains non-printable character: %+q", r)
		}
	}

	return nil
}

// Name ensures that name is not empty, is a valid StrID and does not contain
// any of the forbidden runes.
func Name(name string, forbidden ...rune) error {
	if len(name) == 0 {
		return errors.New("can not be empty")
	}

	for _, r := range forbidden {
		if strings.ContainsRune(name, r) {
			return fmt.Errorf("'%c' character not allowed in name", r)
		}
	}

	return StrID(name)
}
