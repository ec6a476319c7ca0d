package resolver

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/google/uuid"
)

const (
	rootVar        = "root"
	projectnameVar = "projectname"
	projectdirVar  = "projectdir"
	envFunc        = "env"
	uuidFunc       = "uuid"
)

// GoTemplate resolves Go templates in configuration strings.
// The variables {{ .root }}, {{ .projectname }} and {{ .projectdir }} and the
// functions env and uuid are available.
type GoTemplate struct {
	templateVars map[string]string
	funcMap      template.FuncMap
}

func newUUID() string {
	return uuid.NewString()
}

func lookupEnv(envVarName string) (string, error) {
	envVal, exist := os.LookupEnv(envVarName)
	if !exist {
		return "", fmt.Errorf("environment variable %q is undefined", envVarName)
	}

	return envVal, nil
}

func NewGoTemplate(projectName, projectDir, root string) *GoTemplate {
	return &GoTemplate{
		templateVars: map[string]string{
			rootVar:        root,
			projectnameVar: projectName,
			projectdirVar:  projectDir,
		},
		funcMap: template.FuncMap{
			envFunc:  lookupEnv,
			uuidFunc: newUUID,
		},
	}
}

func (s *GoTemplate) Resolve(in string) (string, error) {
	t, err := template.New("buildplus").
		Funcs(s.funcMap).
		Option("missingkey=error").
		Parse(in)
	if err != nil {
		return "", fmt.Errorf("failed parsing go template: %w", err)
	}

	output := new(bytes.Buffer)
	if err = t.Execute(output, s.templateVars); err != nil {
		return "", fmt.Errorf("failed evaluating template: %w", err)
	}

	return output.String(), nil
}
