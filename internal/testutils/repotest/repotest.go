// Package repotest creates buildplus repositories for tests.
package repotest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/simplesurance/buildplus/internal/testutils/fstest"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/cfg"
)

// Repo is a buildplus repository in a temporary directory.
type Repo struct {
	Dir         string
	Cfg         *cfg.Repository
	ProjectCfgs []*cfg.Project
}

type repoOpts struct {
	name     string
	policy   string
	activate []string
}

type Opt func(*repoOpts)

// WithName sets the name of the root project.
func WithName(name string) Opt {
	return func(o *repoOpts) {
		o.name = name
	}
}

// WithOptIn switches the feature activation policy to opt-in and activates
// the given features.
func WithOptIn(features ...string) Opt {
	return func(o *repoOpts) {
		o.policy = cfg.PolicyOptIn
		o.activate = features
	}
}

// CreateBuildplusRepository creates a new repository in a temporary directory
// and writes its configuration file.
func CreateBuildplusRepository(t *testing.T, opts ...Opt) *Repo {
	t.Helper()

	o := repoOpts{
		name:   "acal",
		policy: cfg.PolicyAutoActivate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	repoCfg := cfg.ExampleRepository(o.name)
	repoCfg.Discover.SearchDepth = 2
	repoCfg.Features.Policy = o.policy
	repoCfg.Features.Activate = o.activate
	repoCfg.Features.Deactivate = nil

	r := Repo{
		Dir: t.TempDir(),
		Cfg: repoCfg,
	}

	r.WriteRepositoryCfg(t)

	return &r
}

// RepositoryCfgPath returns the path of the repository configuration file.
func (r *Repo) RepositoryCfgPath() string {
	return filepath.Join(r.Dir, buildplus.RepositoryCfgFile)
}

// WriteRepositoryCfg writes Cfg to the repository configuration file.
func (r *Repo) WriteRepositoryCfg(t *testing.T) {
	t.Helper()

	if err := r.Cfg.ToFile(r.RepositoryCfgPath(), cfg.ToFileOptOverwrite()); err != nil {
		t.Fatalf("writing repository config failed: %s", err)
	}
}

// CreateProject creates a project directory containing a project config with
// the given roles.
func (r *Repo) CreateProject(t *testing.T, name string, roles ...string) *cfg.Project {
	t.Helper()

	p := cfg.Project{
		Name:  name,
		Roles: roles,
	}

	r.WriteProjectCfg(t, &p)
	r.ProjectCfgs = append(r.ProjectCfgs, &p)

	return &p
}

// ProjectDir returns the directory of the project called name.
func (r *Repo) ProjectDir(name string) string {
	return filepath.Join(r.Dir, name)
}

// WriteProjectCfg writes the project configuration to its project directory.
func (r *Repo) WriteProjectCfg(t *testing.T, p *cfg.Project) {
	t.Helper()

	fstest.MkdirAll(t, r.ProjectDir(p.Name))

	err := p.ToFile(filepath.Join(r.ProjectDir(p.Name), buildplus.ProjectCfgFile), cfg.ToFileOptOverwrite())
	if err != nil {
		t.Fatalf("writing project config failed: %s", err)
	}
}

// CreateGWTModule creates a GWT module descriptor for module in the default
// source directory of the project.
func (r *Repo) CreateGWTModule(t *testing.T, projectName, module string) {
	t.Helper()

	path := filepath.Join(
		r.ProjectDir(projectName),
		"src", "main", "java",
		filepath.FromSlash(strings.ReplaceAll(module, ".", "/"))+".gwt.xml",
	)

	fstest.WriteToFile(t, []byte("<module/>\n"), path)
}
