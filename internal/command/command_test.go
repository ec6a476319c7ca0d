package command

import (
	"testing"

	"github.com/simplesurance/buildplus/internal/testutils/repotest"
	"github.com/simplesurance/buildplus/pkg/buildplus"
)

// clearEnv unsets the environment variables that influence the composition
// for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"GWT", "BUILDPLUS_FEATURES", "BUILDPLUS_NO_AUTO_ACTIVATE"} {
		t.Setenv(name, "")
	}
}

// createAcalRepository creates a repository with a model, shared, gwt and
// server project and changes the working directory to it.
func createAcalRepository(t *testing.T) *repotest.Repo {
	t.Helper()

	clearEnv(t)

	r := repotest.CreateBuildplusRepository(t)
	r.Cfg.Features.Deactivate = []string{buildplus.FeatureSOAP}
	r.WriteRepositoryCfg(t)

	r.CreateProject(t, "server", buildplus.RoleServer)
	r.CreateProject(t, "user-experience", buildplus.RoleGWT)
	r.CreateProject(t, "shared", buildplus.RoleShared)
	r.CreateProject(t, "model", buildplus.RoleModel)
	r.CreateGWTModule(t, "user-experience", "org.example.acal.Acal")

	t.Chdir(r.Dir)

	return r
}
