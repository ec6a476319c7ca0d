package cfg

import (
	"fmt"
)

const (
	minSearchDepth = 0
	maxSearchDepth = 10
	// Version identifies the format of the configuration files that the
	// package can parse. Whenever an incompatible change is made, the
	// Version number is increased.
	Version int = 1
)

const (
	PolicyAutoActivate = "auto"
	PolicyOptIn        = "opt-in"
)

// Repository contains the repository configuration.
type Repository struct {
	ConfigVersion int `toml:"config_version" comment:"Internal field, version of buildplus configuration format"`

	Root     Root
	Discover Discover
	Features Features
	GWT      GWT
	Libs     Libs

	filePath string
}

// Root describes the top-level project of the repository.
type Root struct {
	Name  string `toml:"name" comment:"Name of the top-level project, sub projects are named <name>:<project-name>"`
	Group string `toml:"group" comment:"Group of all projects, used to derive java package names"`
}

// Discover stores the [Discover] section of the repository configuration.
type Discover struct {
	Dirs        []string `toml:"project_dirs" comment:"Directories in which projects (.project.toml files) are discovered"`
	SearchDepth int      `toml:"search_depth" comment:"Descend at most search_depth levels to find project configs"`
}

// Features stores the [Features] section of the repository configuration.
type Features struct {
	Policy              string   `toml:"policy" comment:"Activation policy for features that are not listed in activate or deactivate.\n Valid values: auto, opt-in. auto activates all registered features.\n The environment variable BUILDPLUS_NO_AUTO_ACTIVATE=true switches to opt-in."`
	StrictPrerequisites bool     `toml:"strict_prerequisites" comment:"Fail when an active feature has an inactive prerequisite"`
	Activate            []string `toml:"activate" comment:"Features that are activated.\n Additional features can be activated via the comma-separated environment variable BUILDPLUS_FEATURES."`
	Deactivate          []string `toml:"deactivate" comment:"Features that are deactivated"`
}

// GWT stores the settings of the gwt feature.
type GWT struct {
	EnableJSExports bool     `toml:"enable_js_exports" comment:"Pass -generateJsInteropExports to the GWT compiler"`
	JavaArgs        []string `toml:"java_args" comment:"Arguments for the JVM running the GWT compiler.\n When empty, the default arguments are used."`
}

// Libs stores the [Libs] section, artifact specifications that roles add to
// projects.
type Libs struct {
	PackagedDeps      []string `toml:"packaged_deps" comment:"Libraries that are packaged into war files of server projects"`
	GlassfishEmbedded []string `toml:"glassfish_embedded" comment:"Embedded application server, added to the compile dependencies of server projects when the soap feature is active"`
	DBDrivers         []string `toml:"db_drivers" comment:"Database drivers, added to the test dependencies of server projects"`
	GWTDev            []string `toml:"gwt_dev" comment:"Libraries required to run the GWT compiler"`
}

// RepositoryFromFile reads the repository config from a file and returns it.
func RepositoryFromFile(cfgPath string) (*Repository, error) {
	config := Repository{}

	if err := fromFile(cfgPath, &config); err != nil {
		return nil, err
	}

	config.filePath = cfgPath

	return &config, nil
}

// ExampleRepository returns an exemplary Repository config
func ExampleRepository(name string) *Repository {
	return &Repository{
		ConfigVersion: Version,

		Root: Root{
			Name:  name,
			Group: "org.example." + name,
		},

		Discover: Discover{
			Dirs:        []string{"."},
			SearchDepth: 1,
		},

		Features: Features{
			Policy:     PolicyAutoActivate,
			Deactivate: []string{"soap"},
		},

		GWT: GWT{
			JavaArgs: []string{"-ea", "-Djava.awt.headless=true", "-Xms512M", "-Xmx1024M"},
		},

		Libs: Libs{
			PackagedDeps:      []string{"org.realityforge.gwt.cache-filter:gwt-cache-filter:jar:0.9"},
			GlassfishEmbedded: []string{"fish.payara.extras:payara-embedded-all:jar:5.2022.1"},
			DBDrivers:         []string{"net.sourceforge.jtds:jtds:jar:1.3.1"},
			GWTDev:            []string{"com.google.gwt:gwt-dev:jar:2.8.2"},
		},
	}
}

// ToFile writes an Repository configuration file to filepath.
func (r *Repository) ToFile(filepath string, opts ...toFileOpt) error {
	return toFile(r, filepath, opts...)
}

func (r *Repository) FilePath() string {
	return r.filePath
}

// Resolve runs the resolver on the library specifications.
func (r *Repository) Resolve(resolver Resolver) error {
	if err := r.Libs.resolve(resolver); err != nil {
		return fieldErrorWrap(err, "Libs")
	}

	if err := resolveSlice(resolver, r.GWT.JavaArgs, "java_args"); err != nil {
		return fieldErrorWrap(err, "GWT")
	}

	return nil
}

// Validate validates a repository configuration
func (r *Repository) Validate() error {
	if r.ConfigVersion == 0 {
		return newFieldError("can not be unset or 0", "config_version")
	}
	if r.ConfigVersion != Version {
		return fmt.Errorf("incompatible configuration files\n"+
			"config_version value is %d, expecting version: %d\n"+
			"Update your buildplus configuration files or downgrade buildplus.", r.ConfigVersion, Version)
	}

	if err := r.Root.validate(); err != nil {
		return fieldErrorWrap(err, "Root")
	}

	if err := r.Discover.validate(); err != nil {
		return fieldErrorWrap(err, "Discover")
	}

	if err := r.Features.validate(); err != nil {
		return fieldErrorWrap(err, "Features")
	}

	if err := validateNonEmpty(r.GWT.JavaArgs); err != nil {
		return fieldErrorWrap(err, "GWT", "java_args")
	}

	if err := r.Libs.validate(); err != nil {
		return fieldErrorWrap(err, "Libs")
	}

	return nil
}

func (r *Root) validate() error {
	if err := validateName(r.Name); err != nil {
		return fieldErrorWrap(err, "name")
	}

	if r.Group == "" {
		return newFieldError("can not be empty", "group")
	}

	return nil
}

// validate validates the Discover section and sets defaults.
func (d *Discover) validate() error {
	if len(d.Dirs) == 0 {
		return newFieldError("can not be empty", "project_dirs")
	}

	if err := validateNonEmpty(d.Dirs); err != nil {
		return fieldErrorWrap(err, "project_dirs")
	}

	if d.SearchDepth < minSearchDepth || d.SearchDepth > maxSearchDepth {
		return newFieldError(fmt.Sprintf("search_depth parameter must be in range [%d, %d]",
			minSearchDepth, maxSearchDepth),
			"search_depth",
		)
	}

	return nil
}

func (f *Features) validate() error {
	switch f.Policy {
	case "", PolicyAutoActivate, PolicyOptIn:
	default:
		return newFieldError(
			fmt.Sprintf("invalid value %q, must be %q or %q", f.Policy, PolicyAutoActivate, PolicyOptIn),
			"policy",
		)
	}

	if err := validateNames(f.Activate); err != nil {
		return fieldErrorWrap(err, "activate")
	}

	if err := validateNames(f.Deactivate); err != nil {
		return fieldErrorWrap(err, "deactivate")
	}

	for _, name := range f.Activate {
		for _, d := range f.Deactivate {
			if name == d {
				return newFieldError(fmt.Sprintf("feature %q is also listed in activate", name), "deactivate")
			}
		}
	}

	return nil
}

// OptIn returns true if features must be activated explicitly.
func (f *Features) OptIn() bool {
	return f.Policy == PolicyOptIn
}

func (l *Libs) validate() error {
	for _, e := range []struct {
		key  string
		libs []string
	}{
		{"packaged_deps", l.PackagedDeps},
		{"glassfish_embedded", l.GlassfishEmbedded},
		{"db_drivers", l.DBDrivers},
		{"gwt_dev", l.GWTDev},
	} {
		if err := validateNonEmpty(e.libs); err != nil {
			return fieldErrorWrap(err, e.key)
		}
	}

	return nil
}

func (l *Libs) resolve(resolver Resolver) error {
	if err := resolveSlice(resolver, l.PackagedDeps, "packaged_deps"); err != nil {
		return err
	}

	if err := resolveSlice(resolver, l.GlassfishEmbedded, "glassfish_embedded"); err != nil {
		return err
	}

	if err := resolveSlice(resolver, l.DBDrivers, "db_drivers"); err != nil {
		return err
	}

	return resolveSlice(resolver, l.GWTDev, "gwt_dev")
}
