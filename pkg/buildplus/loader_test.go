package buildplus_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesurance/buildplus/internal/log"
	"github.com/simplesurance/buildplus/internal/testutils/repotest"
	"github.com/simplesurance/buildplus/pkg/buildplus"
	"github.com/simplesurance/buildplus/pkg/cfg"
	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

func load(t *testing.T, r *repotest.Repo, env *buildplus.Env) (*compose.Composer, error) {
	t.Helper()

	log.RedirectToTestingLog(t)

	repo, err := buildplus.NewRepository(r.RepositoryCfgPath())
	require.NoError(t, err)

	loader, err := buildplus.NewLoader(repo, env, log.StdLogger)
	require.NoError(t, err)

	return loader.Load()
}

func projectNames(c *compose.Composer) []string {
	var result []string
	for _, p := range c.Projects() {
		result = append(result, p.FullName())
	}

	return result
}

func createAcal(t *testing.T, opts ...repotest.Opt) *repotest.Repo {
	t.Helper()

	r := repotest.CreateBuildplusRepository(t, opts...)
	r.CreateProject(t, "server", buildplus.RoleServer)
	r.CreateProject(t, "user-experience", buildplus.RoleGWT)
	r.CreateProject(t, "shared", buildplus.RoleShared)
	r.CreateProject(t, "model", buildplus.RoleModel)
	r.CreateGWTModule(t, "user-experience", "org.example.acal.Acal")

	return r
}

func TestLoadDefinesProjectsInRoleOrder(t *testing.T) {
	r := createAcal(t)

	c, err := load(t, r, nil)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"acal", "acal:model", "acal:shared", "acal:user-experience", "acal:server"},
		projectNames(c),
	)

	server, ok := c.Project("acal:server")
	require.True(t, ok)
	assert.Equal(t, r.ProjectDir("server"), server.Dir)
	assert.Equal(t, []string{"src/main/java"}, server.SourceDirs)
	assert.Contains(t, server.Package(compose.PackageWar).Libs, "acal:shared:jar")
	assert.Contains(t, server.Package(compose.PackageWar).Libs, "acal:model:jar")
	assert.Contains(t, server.Steps(), "jws_server")

	ux, ok := c.Project("acal:user-experience")
	require.True(t, ok)
	task, exist := ux.Task("gwt")
	require.True(t, exist)
	assert.Equal(t, []string{"org.example.acal.Acal"}, task.Targets)
	assert.Equal(t, r.Cfg.GWT.JavaArgs, task.JavaArgs)
	assert.Contains(t, ux.Deps(compose.ScopeCompile), "acal:shared:jar")

	root, ok := c.Project("acal")
	require.True(t, ok)
	assert.True(t, root.IDE().NullableManager)
	assert.Equal(t, "org.example.acal", root.Group)
}

func TestLoadWithGWTEnvSkipsOtherProjects(t *testing.T) {
	r := createAcal(t)
	r.CreateProject(t, "admin-ui", buildplus.RoleGWT)
	r.CreateGWTModule(t, "admin-ui", "org.example.acal.Admin")

	c, err := load(t, r, &buildplus.Env{GWT: "acal:admin-ui"})
	require.NoError(t, err)

	ux, ok := c.Project("acal:user-experience")
	require.True(t, ok)
	assert.Empty(t, ux.Tasks())
	_, hasFacet := ux.IDE().Facet("gwt")
	assert.True(t, hasFacet, "the idea facet is defined independent of the GWT filter")

	admin, ok := c.Project("acal:admin-ui")
	require.True(t, ok)
	_, exist := admin.Task("gwt")
	assert.True(t, exist)
}

func TestLoadOptIn(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t, repotest.WithOptIn(buildplus.FeatureDomgen))
	r.CreateProject(t, "server", buildplus.RoleServer)

	c, err := load(t, r, &buildplus.Env{Features: []string{buildplus.FeatureDB}})
	require.NoError(t, err)

	server, ok := c.Project("acal:server")
	require.True(t, ok)
	assert.Equal(t, []string{"ee_web_xml", "jpa_dao_test"}, server.Steps())
	assert.Equal(t, []string{buildplus.FeatureDomgen, buildplus.FeatureDB}, c.Features().Snapshot().Names())
}

func TestLoadNoAutoActivateEnv(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.CreateProject(t, "server", buildplus.RoleServer)

	c, err := load(t, r, &buildplus.Env{NoAutoActivate: true})
	require.NoError(t, err)

	server, ok := c.Project("acal:server")
	require.True(t, ok)
	assert.Empty(t, server.Steps())
	assert.Empty(t, c.Features().Snapshot().Names())
}

func TestLoadDeactivatedFeature(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.Cfg.Features.Deactivate = []string{buildplus.FeatureSOAP}
	r.WriteRepositoryCfg(t)
	r.CreateProject(t, "server", buildplus.RoleServer)

	c, err := load(t, r, nil)
	require.NoError(t, err)

	server, ok := c.Project("acal:server")
	require.True(t, ok)
	assert.NotContains(t, server.Steps(), "jws_server")
	assert.NotSubset(t, server.Deps(compose.ScopeCompile), r.Cfg.Libs.GlassfishEmbedded)
}

func TestLoadUnknownFeatureFails(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)

	_, err := load(t, r, &buildplus.Env{Features: []string{"graphql"}})

	var uErr *feature.UnknownFeatureError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "graphql", uErr.Name)
	assert.Contains(t, err.Error(), "BUILDPLUS_FEATURES")
}

func TestLoadStrictPrerequisites(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t, repotest.WithOptIn(buildplus.FeatureGWT))
	r.Cfg.Features.StrictPrerequisites = true
	r.WriteRepositoryCfg(t)

	_, err := load(t, r, nil)

	var pErr *feature.PrerequisiteInactiveError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, buildplus.FeatureGWT, pErr.Feature)
}

func TestLoadUnknownRoleFails(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.CreateProject(t, "client", "client")

	_, err := load(t, r, nil)

	var rErr *compose.UnknownRoleError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "client", rErr.Role)
	assert.Equal(t, "acal:client", rErr.Project)
}

func TestLoadDuplicateProjectNamesFails(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.CreateProject(t, "model", buildplus.RoleModel)

	dup := cfg.Project{Name: "model", Roles: []string{buildplus.RoleModel}}
	require.NoError(t, os.MkdirAll(filepath.Join(r.Dir, "other"), 0o755))
	require.NoError(t, dup.ToFile(filepath.Join(r.Dir, "other", buildplus.ProjectCfgFile)))

	_, err := load(t, r, nil)

	var dErr *buildplus.ErrDuplicateProjectNames
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "model", dErr.ProjectName)
}

func TestLoadProjectSettings(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)

	ux := r.CreateProject(t, "user-experience", buildplus.RoleGWT)
	ux.GWT.TopLevelModules = []string{"org.example.acal.AcalApp"}
	ux.Dependencies.Compile = []string{"{{ .root }}/lib/extra.jar"}
	ux.Publish = new(bool)
	r.WriteProjectCfg(t, ux)
	r.CreateGWTModule(t, "user-experience", "org.example.acal.Acal")

	c, err := load(t, r, nil)
	require.NoError(t, err)

	p, ok := c.Project("acal:user-experience")
	require.True(t, ok)

	task, exist := p.Task("gwt")
	require.True(t, exist)
	assert.Equal(t, []string{"org.example.acal.AcalApp"}, task.Targets)

	repoPath, err := filepath.EvalSymlinks(r.Dir)
	require.NoError(t, err)
	assert.Contains(t, p.Deps(compose.ScopeCompile), repoPath+"/lib/extra.jar")
	assert.False(t, p.Publish)
}

func TestLoadGWTModuleSuffixAndExpandedDependencies(t *testing.T) {
	const artifact = "org.realityforge.replicant:replicant-client:jar:6.0"

	r := repotest.CreateBuildplusRepository(t)

	ux := r.CreateProject(t, "user-experience", buildplus.RoleGWT)
	ux.GWT.ModuleSuffix = "App"
	ux.GWT.ExpandDependencies = []string{artifact}
	ux.Dependencies.Compile = []string{artifact, "javax.inject:javax.inject:jar:1"}
	r.WriteProjectCfg(t, ux)
	r.CreateGWTModule(t, "user-experience", "org.example.acal.Acal")
	r.CreateGWTModule(t, "user-experience", "org.example.acal.AcalApp")

	c, err := load(t, r, nil)
	require.NoError(t, err)

	p, ok := c.Project("acal:user-experience")
	require.True(t, ok)

	assert.NotContains(t, p.Deps(compose.ScopeCompile), artifact)

	_, exist := p.Task("expand_org.realityforge.replicant_replicant-client")
	assert.True(t, exist)

	task, exist := p.Task("gwt")
	require.True(t, exist)
	assert.Equal(t, []string{"org.example.acal.AcalApp"}, task.Targets)
	assert.Contains(t,
		task.Dependencies,
		filepath.Join(p.Dir, "generated", "deps", "org.realityforge.replicant_replicant-client"),
	)
}

func TestLoadGWTProjectWithoutModulesFails(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.CreateProject(t, "user-experience", buildplus.RoleGWT)

	_, err := load(t, r, nil)

	var mErr *compose.MissingConfigurationError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "acal:user-experience", mErr.Project)
}

func TestFindRepositoryCfgFromSubDir(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t)
	r.CreateProject(t, "server", buildplus.RoleServer)

	path, err := buildplus.FindRepositoryCfg(r.ProjectDir("server"))
	require.NoError(t, err)
	assert.Equal(t, r.RepositoryCfgPath(), path)
}

type warnRecorder struct {
	warnings []string
}

func (*warnRecorder) Debugf(string, ...any) {}

func (w *warnRecorder) Warnf(format string, v ...any) {
	w.warnings = append(w.warnings, fmt.Sprintf(format, v...))
}

func TestLoadWarnsAboutInactivePrerequisites(t *testing.T) {
	r := repotest.CreateBuildplusRepository(t, repotest.WithOptIn(buildplus.FeatureGWT))

	repo, err := buildplus.NewRepository(r.RepositoryCfgPath())
	require.NoError(t, err)

	var logger warnRecorder
	loader, err := buildplus.NewLoader(repo, nil, &logger)
	require.NoError(t, err)

	_, err = loader.Load()
	require.NoError(t, err)

	require.Len(t, logger.warnings, 2)
	assert.Contains(t, logger.warnings[0], `prerequisite "jackson" is not`)
	assert.Contains(t, logger.warnings[1], `prerequisite "javascript" is not`)
}
