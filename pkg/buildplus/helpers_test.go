package buildplus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simplesurance/buildplus/pkg/compose"
	"github.com/simplesurance/buildplus/pkg/feature"
)

var testLibs = Libs{
	PackagedDeps:      []string{"org.realityforge.gwt.cache-filter:gwt-cache-filter:jar:0.9"},
	GlassfishEmbedded: []string{"fish.payara.extras:payara-embedded-all:jar:5.2022.1"},
	DBDrivers:         []string{"net.sourceforge.jtds:jtds:jar:1.3.1"},
}

// newTestComposer returns an activated composer with the built-in features
// and roles. If active is nil, all features are activated, otherwise only
// the listed ones.
func newTestComposer(t *testing.T, active []string, opts ...compose.Option) *compose.Composer {
	t.Helper()

	var r *feature.Registry
	if active == nil {
		r = feature.NewRegistry()
	} else {
		r = feature.NewRegistry(feature.WithPolicy(feature.OptIn))
	}

	gwtCfg := NewGWTConfig()
	gwtCfg.DevDeps = []string{"com.google.gwt:gwt-dev:jar:2.8.2"}

	require.NoError(t, RegisterFeatures(r, gwtCfg))
	for _, name := range active {
		require.NoError(t, r.Activate(name))
	}

	c := compose.New(r, opts...)
	require.NoError(t, RegisterRoles(c, &testLibs))
	require.NoError(t, c.Activate())

	return c
}

func newRootProject(dir string) *compose.Project {
	root := compose.NewProject("acal", nil)
	root.Group = "org.realityforge.acal"
	root.Dir = dir

	return root
}
