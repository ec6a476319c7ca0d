package buildplus

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/simplesurance/buildplus/pkg/compose"
)

// StepGWTCompile is the step name of GWT compile tasks that is passed to the
// step filter.
const StepGWTCompile = "gwt"

// EnvFile is the name of the optional file in the repository root that
// contains default values for the environment variables.
const EnvFile = ".buildplus.env"

// Env contains the settings that are read from environment variables.
type Env struct {
	// GWT restricts the definition of GWT compile tasks to the project with
	// the given full name.
	GWT string `env:"GWT"`
	// Features are activated in addition to the features of the repository
	// configuration.
	Features []string `env:"BUILDPLUS_FEATURES" envSeparator:","`
	// NoAutoActivate switches the activation policy to opt-in.
	NoAutoActivate bool `env:"BUILDPLUS_NO_AUTO_ACTIVATE"`
}

// EnvFromRepository parses the environment variables of the process.
// Variables that are not set in the process environment are read from the
// EnvFile in repoDir, if it exists.
func EnvFromRepository(repoDir string) (*Env, error) {
	path := filepath.Join(repoDir, EnvFile)

	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s failed: %w", path, err)
		}

		vars = map[string]string{}
	}

	maps.Copy(vars, env.ToMap(os.Environ()))

	return EnvFromMap(vars)
}

// EnvFromMap parses the environment variables in vars.
func EnvFromMap(vars map[string]string) (*Env, error) {
	var e Env

	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return nil, fmt.Errorf("parsing environment variables failed: %w", err)
	}

	return &e, nil
}

// StepFilter returns a filter that skips GWT compile steps of all projects
// except the one named in the GWT environment variable.
// If the variable is unset, all steps are enabled.
func (e *Env) StepFilter() compose.StepFilter {
	return func(step string, p *compose.Project) bool {
		if step != StepGWTCompile || e.GWT == "" {
			return true
		}

		return e.GWT == p.FullName()
	}
}
