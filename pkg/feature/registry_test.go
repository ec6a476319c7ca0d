package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testContribution struct {
	point ExtensionPoint
	val   string
}

func (c *testContribution) ExtensionPoint() ExtensionPoint {
	return c.point
}

const (
	pointA ExtensionPoint = "A"
	pointB ExtensionPoint = "B"
)

func TestRegisterDuplicateFails(t *testing.T) {
	r := NewRegistry()

	_, err := r.Register("gwt")
	require.NoError(t, err)

	_, err = r.Register("gwt", "jackson")
	var dErr *DuplicateFeatureError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "gwt", dErr.Name)
	assert.Len(t, r.Features(), 1)
}

func TestRegisterInvalidNames(t *testing.T) {
	testcases := []struct {
		Name           string
		ExpectedErrStr string
	}{
		{Name: "", ExpectedErrStr: "can not be empty"},
		{Name: "a.b", ExpectedErrStr: "character not allowed"},
		{Name: "a#", ExpectedErrStr: "character not allowed"},
		{Name: " gwt", ExpectedErrStr: "leading or trailing white spaces"},
	}

	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			_, err := NewRegistry().Register(tc.Name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.ExpectedErrStr)
		})
	}
}

func TestEnhanceUnknownFeatureFails(t *testing.T) {
	r := NewRegistry()

	err := r.Enhance("gwt", pointA, &testContribution{point: pointA})
	var uErr *UnknownFeatureError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "gwt", uErr.Name)
}

func TestEnhanceWithMismatchingPointFails(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("gwt")
	require.NoError(t, err)

	require.Error(t, r.Enhance("gwt", pointA, &testContribution{point: pointB}))
	require.Error(t, r.Enhance("gwt", pointA, nil))
}

func TestActivatedUnknownNameFollowsPolicy(t *testing.T) {
	assert.True(t, NewRegistry().Activated("never-registered"))
	assert.True(t, NewRegistry(WithPolicy(AutoActivate)).Activated("never-registered"))
	assert.False(t, NewRegistry(WithPolicy(OptIn)).Activated("never-registered"))
}

func TestExplicitFlagOverridesPolicy(t *testing.T) {
	r := NewRegistry(WithPolicy(OptIn))
	require.NoError(t, r.Activate("gwt"))
	assert.True(t, r.Activated("gwt"))

	r = NewRegistry()
	require.NoError(t, r.Deactivate("gwt"))
	assert.False(t, r.Activated("gwt"))
}

func TestAutoActivateIsIdempotent(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		_, err := r.Register(name)
		require.NoError(t, err)
	}
	require.NoError(t, r.Deactivate("b"))

	require.NoError(t, r.AutoActivate())
	first := r.Snapshot()

	require.NoError(t, r.AutoActivate())
	second := r.Snapshot()

	assert.Equal(t, []string{"a", "c"}, first.Names())
	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Explicit(), second.Explicit())
}

func TestAutoActivateWithOptInPolicyIsNoop(t *testing.T) {
	r := NewRegistry(WithPolicy(OptIn))
	_, err := r.Register("a")
	require.NoError(t, err)

	require.NoError(t, r.AutoActivate())
	assert.False(t, r.Activated("a"))
	assert.Empty(t, r.Active())
}

func TestContributionsOfInactiveFeaturesAreOmitted(t *testing.T) {
	r := NewRegistry(WithPolicy(OptIn))

	require.NoError(t, r.Define("a", nil, func(d *Definer) {
		d.Enhance(pointA, &testContribution{point: pointA, val: "a1"})
		d.Enhance(pointB, &testContribution{point: pointB, val: "a2"})
	}))
	require.NoError(t, r.Define("b", []string{"a"}, func(d *Definer) {
		d.Enhance(pointA, &testContribution{point: pointA, val: "b1"})
		d.Enhance(pointA, &testContribution{point: pointA, val: "b2"})
	}))
	require.NoError(t, r.Define("c", nil, func(d *Definer) {
		d.Enhance(pointA, &testContribution{point: pointA, val: "c1"})
	}))

	require.NoError(t, r.Activate("b"))
	require.NoError(t, r.Activate("c"))

	var vals []string
	for _, c := range r.Contributions(pointA) {
		vals = append(vals, c.(*testContribution).val)
	}

	assert.Equal(t, []string{"b1", "b2", "c1"}, vals)
	assert.Empty(t, r.Contributions(pointB))
}

func TestDefinerStopsAtFirstError(t *testing.T) {
	r := NewRegistry()

	err := r.Define("a", nil, func(d *Definer) {
		d.Enhance(pointA, &testContribution{point: pointB})
		d.Enhance(pointA, &testContribution{point: pointA})
	})
	require.Error(t, err)

	f, exist := r.Lookup("a")
	require.True(t, exist)
	assert.Empty(t, f.Enhancements())
}

func TestValidateUnregisteredPrerequisite(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("gwt", "jackson")
	require.NoError(t, err)

	err = r.Validate()
	var uErr *UnknownFeatureError
	require.ErrorAs(t, err, &uErr)
	assert.Equal(t, "jackson", uErr.Name)
	assert.Equal(t, "gwt", uErr.Referrer)
}

func TestPrerequisitesAreAdvisory(t *testing.T) {
	r := NewRegistry(WithPolicy(OptIn))
	_, err := r.Register("a")
	require.NoError(t, err)
	_, err = r.Register("b", "a")
	require.NoError(t, err)
	require.NoError(t, r.Activate("b"))

	require.NoError(t, r.Validate())
	assert.False(t, r.Activated("a"))
	assert.True(t, r.Activated("b"))

	assert.Equal(t,
		[]*PrerequisiteInactiveError{{Feature: "b", Prerequisite: "a"}},
		r.UnmetPrerequisites(),
	)
}

func TestStrictPrerequisites(t *testing.T) {
	r := NewRegistry(WithPolicy(OptIn), WithStrictPrerequisites())
	_, err := r.Register("a")
	require.NoError(t, err)
	_, err = r.Register("b", "a")
	require.NoError(t, err)
	require.NoError(t, r.Activate("b"))

	err = r.Validate()
	var pErr *PrerequisiteInactiveError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "b", pErr.Feature)
	assert.Equal(t, "a", pErr.Prerequisite)

	require.NoError(t, r.Activate("a"))
	require.NoError(t, r.Validate())
}

func TestFrozenRegistryRejectsModifications(t *testing.T) {
	r := NewRegistry()
	_, err := r.Register("a")
	require.NoError(t, err)
	r.Freeze()

	_, err = r.Register("b")
	require.ErrorIs(t, err, ErrFrozen)
	require.ErrorIs(t, r.Activate("a"), ErrFrozen)
	require.ErrorIs(t, r.Deactivate("a"), ErrFrozen)
	require.ErrorIs(t, r.Enhance("a", pointA, &testContribution{point: pointA}), ErrFrozen)
	require.ErrorIs(t, r.SetPolicy(OptIn), ErrFrozen)
	require.ErrorIs(t, r.AutoActivate(), ErrFrozen)
}

func TestFeatureExtensionPoints(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Define("a", []string{"x", "y"}, func(d *Definer) {
		d.Enhance(pointB, &testContribution{point: pointB})
		d.Enhance(pointA, &testContribution{point: pointA})
		d.Enhance(pointB, &testContribution{point: pointB})
	}))

	f, _ := r.Lookup("a")
	assert.Equal(t, []ExtensionPoint{pointB, pointA}, f.ExtensionPoints())
	assert.Equal(t, []string{"x", "y"}, f.Prerequisites())
}
