package buildplus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplesurance/buildplus/internal/testutils/fstest"
	"github.com/simplesurance/buildplus/pkg/compose"
)

func TestEnvFromMap(t *testing.T) {
	e, err := EnvFromMap(map[string]string{
		"GWT":                        "acal:user-experience",
		"BUILDPLUS_FEATURES":         "soap,xml",
		"BUILDPLUS_NO_AUTO_ACTIVATE": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "acal:user-experience", e.GWT)
	assert.Equal(t, []string{"soap", "xml"}, e.Features)
	assert.True(t, e.NoAutoActivate)
}

func TestEnvFromMapInvalidBool(t *testing.T) {
	_, err := EnvFromMap(map[string]string{"BUILDPLUS_NO_AUTO_ACTIVATE": "maybe"})
	require.Error(t, err)
}

func TestEnvFromRepository(t *testing.T) {
	dir := t.TempDir()
	fstest.WriteToFile(t,
		[]byte("# defaults\nGWT=acal:user-experience\nBUILDPLUS_FEATURES=soap,xml\n"),
		filepath.Join(dir, EnvFile),
	)
	t.Setenv("BUILDPLUS_FEATURES", "db")

	e, err := EnvFromRepository(dir)
	require.NoError(t, err)

	assert.Equal(t, "acal:user-experience", e.GWT)
	assert.Equal(t, []string{"db"}, e.Features, "process environment must take precedence")
}

func TestEnvFromRepositoryWithoutEnvFile(t *testing.T) {
	t.Setenv("GWT", "acal:gwt")

	e, err := EnvFromRepository(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "acal:gwt", e.GWT)
}

func TestStepFilter(t *testing.T) {
	root := compose.NewProject("acal", nil)
	ux := compose.NewProject("user-experience", root)
	other := compose.NewProject("other", root)

	unset := (&Env{}).StepFilter()
	assert.True(t, unset(StepGWTCompile, ux))
	assert.True(t, unset(StepGWTCompile, other))

	filter := (&Env{GWT: "acal:user-experience"}).StepFilter()
	assert.True(t, filter(StepGWTCompile, ux))
	assert.False(t, filter(StepGWTCompile, other))
	assert.True(t, filter("assets", other))
}
