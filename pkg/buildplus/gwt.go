package buildplus

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/simplesurance/buildplus/internal/fs"
	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

const (
	gwtModuleFileSuffix = ".gwt.xml"
	gwtModuleGlob       = "**/*" + gwtModuleFileSuffix
	gwtCompilerMaxHeap  = "1024"
	// gwtCompileTarget is the directory, relative to the project directory,
	// that contains the compiled classes.
	gwtCompileTarget = "target/classes"
	// gwtExpandDir is the directory, relative to the project directory, into
	// that expanded dependencies are extracted.
	gwtExpandDir = "generated/deps"
)

// DefaultGWTJavaArgs are the JVM arguments of the GWT compiler, when none
// are configured.
var DefaultGWTJavaArgs = []string{"-ea", "-Djava.awt.headless=true", "-Xms512M", "-Xmx1024M"}

// GWTConfig is the process wide configuration of the gwt feature.
// It is contributed as setting to the Config extension point.
type GWTConfig struct {
	EnableJSExports bool
	JavaArgs        []string
	// DevDeps are the libraries that the GWT compiler requires.
	DevDeps []string
}

// NewGWTConfig returns a GWTConfig with the default settings.
func NewGWTConfig() *GWTConfig {
	return &GWTConfig{
		JavaArgs: slices.Clone(DefaultGWTJavaArgs),
	}
}

// GWTProject is attached to every project when the gwt feature is active.
type GWTProject struct {
	project  *compose.Project
	composer *compose.Composer
	cfg      *GWTConfig

	// TopLevelModules are the modules that are compiled. When empty, they
	// are determined from the modules of the project.
	TopLevelModules []string
	// ModuleSuffix is used by DefineTask to search for top-level modules
	// when no suffix is passed.
	ModuleSuffix string

	modules []string
}

func newGWTExtension() *compose.Extension {
	return &compose.Extension{
		Name: FeatureGWT,
		New: func(c *compose.Composer, p *compose.Project) (compose.Attachment, error) {
			cfg, ok := compose.SettingOf[*GWTConfig](c, FeatureGWT)
			if !ok {
				return nil, fmt.Errorf("setting %q is missing or has the wrong type", FeatureGWT)
			}

			return &GWTProject{project: p, composer: c, cfg: cfg}, nil
		},
	}
}

func defineGWTFeature(r *feature.Registry, cfg *GWTConfig) error {
	return r.Define(FeatureGWT, []string{FeatureJackson, FeatureJavascript}, func(d *feature.Definer) {
		d.Enhance(compose.PointConfig, &compose.Setting{Name: FeatureGWT, Value: cfg})
		d.Enhance(compose.PointProjectExtension, newGWTExtension())
	})
}

// GWTOf returns the GWT extension of p.
// It returns false if the gwt feature is not active.
func GWTOf(p *compose.Project) (*GWTProject, bool) {
	return compose.AttachmentOf[*GWTProject](p)
}

func (g *GWTProject) moduleDirs() []string {
	var dirs []string

	for _, d := range slices.Concat(g.project.GeneratedSourceDirs, g.project.SourceDirs, g.project.ResourceDirs) {
		if !filepath.IsAbs(d) {
			d = filepath.Join(g.project.Dir, d)
		}

		if !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}

	return dirs
}

// Modules returns the names of the GWT modules in the source and resource
// directories of the project.
// The directories are scanned on the first call, the result is cached.
func (g *GWTProject) Modules() ([]string, error) {
	if g.modules != nil {
		return slices.Clone(g.modules), nil
	}

	modules := []string{}

	for _, dir := range g.moduleDirs() {
		paths, err := fs.DirGlob(dir, gwtModuleGlob)
		if err != nil {
			return nil, fmt.Errorf("searching gwt modules in %q failed: %w", dir, err)
		}

		slices.Sort(paths)

		for _, p := range paths {
			name := strings.ReplaceAll(strings.TrimSuffix(p, gwtModuleFileSuffix), "/", ".")
			if !slices.Contains(modules, name) {
				modules = append(modules, name)
			}
		}
	}

	g.modules = modules

	return slices.Clone(modules), nil
}

// IsModule returns true if the project contains the GWT module.
func (g *GWTProject) IsModule(name string) (bool, error) {
	modules, err := g.Modules()
	if err != nil {
		return false, err
	}

	return slices.Contains(modules, name), nil
}

// GuessModuleName returns the conventional name of a GWT module, derived
// from the group and name of the root project.
func (g *GWTProject) GuessModuleName(suffix string) string {
	root := g.project.Root()
	return root.GroupAsPackage() + "." + root.NameAsClass() + suffix
}

// DetermineTopLevelModules returns TopLevelModules if it is not empty.
// Elements of TopLevelModules that are glob patterns, like
// "org.example.*App", are replaced by the matching modules of the project.
// If TopLevelModules is empty, the modules of the project whose name ends
// with suffix are returned. If none exist a
// *compose.MissingConfigurationError is returned.
func (g *GWTProject) DetermineTopLevelModules(suffix string) ([]string, error) {
	if len(g.TopLevelModules) > 0 {
		return g.expandTopLevelModules()
	}

	modules, err := g.Modules()
	if err != nil {
		return nil, err
	}

	var result []string
	for _, m := range modules {
		if strings.HasSuffix(m, suffix) {
			result = append(result, m)
		}
	}

	if len(result) == 0 {
		return nil, &compose.MissingConfigurationError{
			Project: g.project.FullName(),
			Setting: "top level gwt modules",
			Hint: fmt.Sprintf(
				"specify them via GWT.top_level_modules or create a module with the suffix %q, e.g. %q",
				suffix, g.GuessModuleName(suffix),
			),
		}
	}

	return result, nil
}

func (g *GWTProject) expandTopLevelModules() ([]string, error) {
	var result []string

	for _, pattern := range g.TopLevelModules {
		if !strings.ContainsAny(pattern, "*?[{") {
			result = appendModule(result, pattern)
			continue
		}

		modules, err := g.Modules()
		if err != nil {
			return nil, err
		}

		var matched bool
		for _, m := range modules {
			match, err := fs.MatchGlob(pattern, m)
			if err != nil {
				return nil, fmt.Errorf("top level module pattern %q: %w", pattern, err)
			}

			if match {
				result = appendModule(result, m)
				matched = true
			}
		}

		if !matched {
			return nil, &compose.MissingConfigurationError{
				Project: g.project.FullName(),
				Setting: "top level gwt modules",
				Hint:    fmt.Sprintf("the pattern %q does not match any module", pattern),
			}
		}
	}

	return result, nil
}

func appendModule(modules []string, m string) []string {
	if slices.Contains(modules, m) {
		return modules
	}

	return append(modules, m)
}

// compileDeps returns the dependencies of the GWT compiler.
func (g *GWTProject) compileDeps() []string {
	deps := g.project.Deps(compose.ScopeCompile)
	deps = append(deps, filepath.Join(g.project.Dir, gwtCompileTarget))

	for _, d := range g.project.GeneratedSourceDirs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(g.project.Dir, d)
		}
		deps = append(deps, d)
	}

	return append(deps, g.cfg.DevDeps...)
}

// DefineTask adds a task to the project that compiles the top-level modules
// with the given suffix. When suffix is empty, ModuleSuffix is searched for.
// options overwrite the default options of the task.
// If the step filter disables the GWT compilation for the project, no task
// is defined and nil is returned.
func (g *GWTProject) DefineTask(suffix string, options map[string]string) (*compose.Task, error) {
	if !g.composer.StepEnabled(StepGWTCompile, g.project) {
		return nil, nil
	}

	search := suffix
	if search == "" {
		search = g.ModuleSuffix
	}

	modules, err := g.DetermineTopLevelModules(search)
	if err != nil {
		return nil, err
	}

	name := StepGWTCompile
	if suffix != "" {
		name += "_" + suffix
	}

	opts := map[string]string{
		"js_exports": strconv.FormatBool(g.cfg.EnableJSExports),
	}
	maps.Copy(opts, options)

	t := compose.Task{
		Name:         name,
		Type:         StepGWTCompile,
		Targets:      modules,
		JavaArgs:     slices.Clone(g.cfg.JavaArgs),
		Dependencies: g.compileDeps(),
		Options:      opts,
	}

	if err := g.project.AddTask(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// DefineIdeaFacet adds a GWT facet, containing all modules of the project,
// to the IDE model.
func (g *GWTProject) DefineIdeaFacet() error {
	modules, err := g.Modules()
	if err != nil {
		return err
	}

	if len(modules) == 0 {
		return &compose.MissingConfigurationError{
			Project: g.project.FullName(),
			Setting: "gwt modules",
			Hint:    "no *" + gwtModuleFileSuffix + " files exist in the source and resource directories",
		}
	}

	facet := compose.Facet{
		Type: FeatureGWT,
		Settings: map[string]string{
			"compilerMaxHeapSize": gwtCompilerMaxHeap,
			"gwtDevArtifact":      strings.Join(g.cfg.DevDeps, ","),
		},
		Modules: make(map[string]bool, len(modules)),
	}

	for _, m := range modules {
		facet.Modules[m] = false
	}

	g.project.IDE().AddFacet(&facet)

	return nil
}

// AddSourceToJar includes the source directories in the jar of the project.
func (g *GWTProject) AddSourceToJar() {
	jar := g.project.Package(compose.PackageJar)

	for _, src := range g.project.SourceDirs {
		jar.Include(src+"/*", "")
	}
}

// ExpandDependency replaces the given artifacts in the compile dependencies
// with a generated source directory that the artifacts are extracted into.
// Artifacts are specified as group:id[:type[:version]].
// It allows to change GWT libraries of other repositories without restarting
// the development mode.
func (g *GWTProject) ExpandDependency(artifacts ...string) error {
	for _, a := range artifacts {
		parts := strings.Split(a, ":")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("invalid artifact %q, expecting the format group:id[:type[:version]]", a)
		}

		key := parts[0] + "_" + parts[1]
		targetDir := filepath.Join(gwtExpandDir, key)

		err := g.project.AddTask(&compose.Task{
			Name:         "expand_" + key,
			Type:         "unzip",
			Targets:      []string{filepath.Join(g.project.Dir, targetDir)},
			Dependencies: []string{a},
		})
		if err != nil {
			return err
		}

		g.project.GeneratedSourceDirs = append(g.project.GeneratedSourceDirs, targetDir)
		g.project.RemoveDeps(compose.ScopeCompile, a)
		g.modules = nil
	}

	return nil
}
