package cfg

import (
	"path/filepath"
)

// Project stores a project configuration.
type Project struct {
	Name         string   `toml:"name" comment:"Project name"`
	Roles        []string `toml:"roles" comment:"Roles that are applied to the project, in order.\n Built-in roles: model, model_qa_support, shared, gwt, server"`
	Publish      *bool    `toml:"publish" comment:"Publish the artifacts of the project. When unset, the roles decide."`
	SourceDirs   []string `toml:"source_dirs" comment:"Java source directories, relative to the project directory.\n Defaults to src/main/java"`
	ResourceDirs []string `toml:"resource_dirs" comment:"Resource directories, relative to the project directory.\n Defaults to src/main/resources"`

	Dependencies Dependencies
	GWT          ProjectGWT

	filepath string
}

// Dependencies stores additional dependencies of a project.
type Dependencies struct {
	Compile []string `toml:"compile" comment:"Artifacts or project names that are added to the compile dependencies"`
	Test    []string `toml:"test" comment:"Artifacts or project names that are added to the test dependencies"`
}

// ProjectGWT stores the GWT settings of a project.
type ProjectGWT struct {
	TopLevelModules []string `toml:"top_level_modules" comment:"GWT modules that are compiled.\n When empty, the modules are determined from the *.gwt.xml files of the project."`
	ModuleSuffix    string   `toml:"module_suffix" comment:"Suffix of the top-level GWT module names that are guessed or searched for"`
	// ExpandDependencies are compile dependencies that are extracted into
	// a generated source directory instead of being used as jars.
	ExpandDependencies []string `toml:"expand_dependencies" comment:"Compile dependencies in the format group:id[:type[:version]] that are extracted into a generated source directory.\n Allows changing GWT libraries without restarting the development mode."`
}

// ExampleProject returns an exemplary project cfg struct with the name set to
// the given value.
func ExampleProject(name string) *Project {
	return &Project{
		Name:         name,
		Roles:        []string{"server"},
		SourceDirs:   []string{"src/main/java"},
		ResourceDirs: []string{"src/main/resources"},
		Dependencies: Dependencies{
			Compile: []string{"org.realityforge.javax.annotation:javax.annotation:jar:1.0.1"},
			Test:    []string{"{{ .root }}/lib/test-support.jar"},
		},
		GWT: ProjectGWT{
			ModuleSuffix: "App",
		},
	}
}

// ProjectFromFile unmarshals a project configuration from a file and returns
// it.
func ProjectFromFile(path string) (*Project, error) {
	config := Project{}

	if err := fromFile(path, &config); err != nil {
		return nil, err
	}

	config.filepath = path

	return &config, nil
}

// ToFile marshals the Project into toml format and writes it to the given
// filepath.
func (p *Project) ToFile(filepath string, opts ...toFileOpt) error {
	p.filepath = filepath
	return toFile(p, filepath, opts...)
}

// FilePath returns the path of the project configuration file.
func (p *Project) FilePath() string {
	return p.filepath
}

// Dir returns the directory of the project configuration file.
func (p *Project) Dir() string {
	return filepath.Dir(p.filepath)
}

// Resolve runs the resolvers on string fields that can contain special strings.
// These special strings are replaced with concrete values by the resolvers.
func (p *Project) Resolve(resolver Resolver) error {
	if err := resolveSlice(resolver, p.SourceDirs, "source_dirs"); err != nil {
		return err
	}

	if err := resolveSlice(resolver, p.ResourceDirs, "resource_dirs"); err != nil {
		return err
	}

	if err := resolveSlice(resolver, p.Dependencies.Compile, "compile"); err != nil {
		return fieldErrorWrap(err, "Dependencies")
	}

	if err := resolveSlice(resolver, p.Dependencies.Test, "test"); err != nil {
		return fieldErrorWrap(err, "Dependencies")
	}

	if err := resolveSlice(resolver, p.GWT.ExpandDependencies, "expand_dependencies"); err != nil {
		return fieldErrorWrap(err, "GWT")
	}

	return nil
}

// Validate validates the configuration.
func (p *Project) Validate() error {
	if err := validateName(p.Name); err != nil {
		return fieldErrorWrap(err, "name")
	}

	if len(p.Roles) == 0 {
		return newFieldError("can not be empty", "roles")
	}

	if err := validateNames(p.Roles); err != nil {
		return fieldErrorWrap(err, "roles")
	}

	for _, e := range []struct {
		key  string
		dirs []string
	}{
		{"source_dirs", p.SourceDirs},
		{"resource_dirs", p.ResourceDirs},
	} {
		if err := validateRelPaths(e.dirs); err != nil {
			return fieldErrorWrap(err, e.key)
		}
	}

	if err := validateNonEmpty(p.Dependencies.Compile); err != nil {
		return fieldErrorWrap(err, "Dependencies", "compile")
	}

	if err := validateNonEmpty(p.Dependencies.Test); err != nil {
		return fieldErrorWrap(err, "Dependencies", "test")
	}

	if err := validateNonEmpty(p.GWT.TopLevelModules); err != nil {
		return fieldErrorWrap(err, "GWT", "top_level_modules")
	}

	if err := validateNonEmpty(p.GWT.ExpandDependencies); err != nil {
		return fieldErrorWrap(err, "GWT", "expand_dependencies")
	}

	return nil
}

func validateRelPaths(paths []string) error {
	if err := validateNonEmpty(paths); err != nil {
		return err
	}

	for _, p := range paths {
		if filepath.IsAbs(p) {
			return newFieldError("path must be relative to the project directory", p)
		}
	}

	return nil
}
