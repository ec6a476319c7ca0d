package buildplus

import (
	"fmt"
	"path/filepath"

	"github.com/simplesurance/buildplus/internal/fs"
	"github.com/simplesurance/buildplus/pkg/cfg"
	"github.com/simplesurance/buildplus/pkg/cfg/resolver"
)

// Repository represents a buildplus repository.
type Repository struct {
	Path        string
	CfgPath     string
	Cfg         *cfg.Repository
	SearchDepth int
}

// FindRepositoryCfg searches for a repository config file. The search starts
// in dir and traverses the parent directory down to the root.
// It returns the path to the first found repository configuration file.
func FindRepositoryCfg(dir string) (string, error) {
	return fs.FindFileInParentDirs(dir, RepositoryCfgFile)
}

// NewRepository parses the repository configuration file cfgPath and returns a
// Repository.
func NewRepository(cfgPath string) (*Repository, error) {
	realCfgPath, err := fs.RealPath(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing repository config path %q failed: %w", cfgPath, err)
	}

	repoCfg, err := cfg.RepositoryFromFile(realCfgPath)
	if err != nil {
		return nil, fmt.Errorf(
			"reading repository config %q failed: %w", realCfgPath, err)
	}

	err = repoCfg.Validate()
	if err != nil {
		return nil, fmt.Errorf(
			"validating repository config %q failed: %w", realCfgPath, err)
	}
	repoPath := filepath.Dir(realCfgPath)

	err = repoCfg.Resolve(resolver.NewGoTemplate(repoCfg.Root.Name, repoPath, repoPath))
	if err != nil {
		return nil, fmt.Errorf(
			"resolving variables in repository config %q failed: %w", realCfgPath, err)
	}

	r := Repository{
		Cfg:         repoCfg,
		CfgPath:     realCfgPath,
		Path:        repoPath,
		SearchDepth: repoCfg.Discover.SearchDepth,
	}

	return &r, nil
}

// GWTConfig returns the configuration of the gwt feature.
func (r *Repository) GWTConfig() *GWTConfig {
	result := NewGWTConfig()
	result.EnableJSExports = r.Cfg.GWT.EnableJSExports
	result.DevDeps = r.Cfg.Libs.GWTDev

	if len(r.Cfg.GWT.JavaArgs) > 0 {
		result.JavaArgs = r.Cfg.GWT.JavaArgs
	}

	return result
}

// Libs returns the artifacts that roles add to projects.
func (r *Repository) Libs() *Libs {
	return &Libs{
		PackagedDeps:      r.Cfg.Libs.PackagedDeps,
		GlassfishEmbedded: r.Cfg.Libs.GlassfishEmbedded,
		DBDrivers:         r.Cfg.Libs.DBDrivers,
	}
}
