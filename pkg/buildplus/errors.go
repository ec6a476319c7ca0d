package buildplus

import "fmt"

type ErrDuplicateProjectNames struct {
	ProjectName  string
	ProjectPath1 string
	ProjectPath2 string
}

func (e *ErrDuplicateProjectNames) Error() string {
	return fmt.Sprintf(
		"project names must be unique but the following project configs use the same name %q: %s, %s",
		e.ProjectName, e.ProjectPath1, e.ProjectPath2,
	)
}
