package buildplus

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/simplesurance/buildplus/internal/fs"
	"github.com/simplesurance/buildplus/pkg/cfg"
	"github.com/simplesurance/buildplus/pkg/cfg/resolver"
	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

var (
	defaultSourceDirs   = []string{"src/main/java"}
	defaultResourceDirs = []string{"src/main/resources"}
)

// Loader discovers the projects of a repository and composes them.
type Loader struct {
	logger          Logger
	repo            *Repository
	env             *Env
	projectCfgPaths []string
}

// NewLoader discovers the project configuration files of the repository.
func NewLoader(repo *Repository, env *Env, logger Logger) (*Loader, error) {
	projectCfgPaths, err := findProjectConfigs(fs.AbsPaths(repo.Path, repo.Cfg.Discover.Dirs), repo.SearchDepth)
	if err != nil {
		return nil, fmt.Errorf("discovering project config files failed: %w", err)
	}

	logger.Debugf("loader: found the following project configs:\n%s", strings.Join(projectCfgPaths, "\n"))

	if env == nil {
		env = &Env{}
	}

	return &Loader{
		logger:          logger,
		repo:            repo,
		env:             env,
		projectCfgPaths: projectCfgPaths,
	}, nil
}

// ProjectCfgPaths returns the paths of the discovered project configuration
// files.
func (l *Loader) ProjectCfgPaths() []string {
	return slices.Clone(l.projectCfgPaths)
}

// Features returns a registry containing the built-in features, activated
// according to the repository configuration and the environment.
func (l *Loader) Features() (*feature.Registry, error) {
	fcfg := &l.repo.Cfg.Features

	policy := feature.AutoActivate
	if fcfg.OptIn() || l.env.NoAutoActivate {
		policy = feature.OptIn
	}

	opts := []feature.Option{
		feature.WithPolicy(policy),
		feature.WithLogger(l.logger),
	}
	if fcfg.StrictPrerequisites {
		opts = append(opts, feature.WithStrictPrerequisites())
	}

	r := feature.NewRegistry(opts...)

	if err := RegisterFeatures(r, l.repo.GWTConfig()); err != nil {
		return nil, err
	}

	for _, a := range []struct {
		source string
		names  []string
		fn     func(string) error
	}{
		{"Features.deactivate", fcfg.Deactivate, r.Deactivate},
		{"Features.activate", fcfg.Activate, r.Activate},
		{"BUILDPLUS_FEATURES", l.env.Features, r.Activate},
	} {
		for _, name := range a.names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			if _, exist := r.Lookup(name); !exist {
				return nil, fmt.Errorf("%s: %w", a.source, &feature.UnknownFeatureError{Name: name})
			}

			if err := a.fn(name); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

type projectCfg struct {
	cfg      *cfg.Project
	rolePrio int
}

// Load composes the root project and all discovered projects.
// Projects are defined in the order of the registration of their roles,
// projects that other roles depend on, like model projects, are defined
// first.
func (l *Loader) Load() (*compose.Composer, error) {
	features, err := l.Features()
	if err != nil {
		return nil, err
	}

	c := compose.New(
		features,
		compose.WithLogger(l.logger),
		compose.WithStepFilter(l.env.StepFilter()),
	)

	if err := RegisterRoles(c, l.repo.Libs()); err != nil {
		return nil, err
	}

	projectCfgs, err := l.projectCfgs(c)
	if err != nil {
		return nil, err
	}

	if err := c.AutoActivate(); err != nil {
		return nil, fmt.Errorf("activating extensions failed: %w", err)
	}

	for _, e := range features.UnmetPrerequisites() {
		l.logger.Warnf("%s, the contributions of %q are applied anyway\n", e, e.Feature)
	}

	root := compose.NewProject(l.repo.Cfg.Root.Name, nil)
	root.Group = l.repo.Cfg.Root.Group
	root.Dir = l.repo.Path

	if err := c.Define(root); err != nil {
		return nil, err
	}

	for _, pc := range projectCfgs {
		if err := l.define(c, root, pc.cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", pc.cfg.FilePath(), err)
		}
	}

	return c, nil
}

func (l *Loader) projectCfgs(c *compose.Composer) ([]*projectCfg, error) {
	rolePrio := map[string]int{}
	for i, r := range c.Roles() {
		rolePrio[r.Name] = i
	}

	result := make([]*projectCfg, 0, len(l.projectCfgPaths))
	paths := map[string]string{}

	for _, path := range l.projectCfgPaths {
		pcfg, err := l.projectCfg(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if otherPath, exist := paths[pcfg.Name]; exist {
			return nil, &ErrDuplicateProjectNames{
				ProjectName:  pcfg.Name,
				ProjectPath1: otherPath,
				ProjectPath2: path,
			}
		}
		paths[pcfg.Name] = path

		prio := math.MaxInt
		for _, role := range pcfg.Roles {
			if p, exist := rolePrio[role]; exist && p < prio {
				prio = p
			}
		}

		result = append(result, &projectCfg{cfg: pcfg, rolePrio: prio})
	}

	slices.SortStableFunc(result, func(a, b *projectCfg) int {
		return cmp.Compare(a.rolePrio, b.rolePrio)
	})

	return result, nil
}

func (l *Loader) projectCfg(path string) (*cfg.Project, error) {
	pcfg, err := cfg.ProjectFromFile(path)
	if err != nil {
		return nil, err
	}

	err = pcfg.Resolve(resolver.NewGoTemplate(pcfg.Name, pcfg.Dir(), l.repo.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving variables failed: %w", err)
	}

	if err := pcfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return pcfg, nil
}

func (l *Loader) define(c *compose.Composer, root *compose.Project, pcfg *cfg.Project) error {
	p := compose.NewProject(pcfg.Name, root)
	p.Dir = pcfg.Dir()
	p.SourceDirs = orDefault(pcfg.SourceDirs, defaultSourceDirs)
	p.ResourceDirs = orDefault(pcfg.ResourceDirs, defaultResourceDirs)
	p.AddDeps(compose.ScopeCompile, pcfg.Dependencies.Compile...)
	p.AddDeps(compose.ScopeTest, pcfg.Dependencies.Test...)

	if err := c.ApplyExtensions(p); err != nil {
		return err
	}

	if g, ok := GWTOf(p); ok {
		g.TopLevelModules = pcfg.GWT.TopLevelModules
		g.ModuleSuffix = pcfg.GWT.ModuleSuffix

		if err := g.ExpandDependency(pcfg.GWT.ExpandDependencies...); err != nil {
			return err
		}
	}

	l.logger.Debugf("loader: defining project %q with roles %q", p, pcfg.Roles)

	if err := c.Define(p, pcfg.Roles...); err != nil {
		return err
	}

	if pcfg.Publish != nil {
		p.Publish = *pcfg.Publish
	}

	return nil
}

func orDefault(val, def []string) []string {
	if len(val) == 0 {
		return slices.Clone(def)
	}

	return slices.Clone(val)
}

func findProjectConfigs(searchDirs []string, searchDepth int) ([]string, error) {
	var result []string // nolint:prealloc

	for _, searchDir := range searchDirs {
		if err := fs.DirsExist(searchDir); err != nil {
			return nil, fmt.Errorf("project search directory: %w", err)
		}

		cfgPaths, err := fs.FindFilesInSubDir(searchDir, ProjectCfgFile, searchDepth)
		if err != nil {
			return nil, err
		}

		for _, p := range cfgPaths {
			if !slices.Contains(result, p) {
				result = append(result, p)
			}
		}
	}

	return result, nil
}
