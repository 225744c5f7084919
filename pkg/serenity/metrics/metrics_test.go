package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"github.com/serenity-wellness/serenity/pkg/serenity/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Resolutions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	sel := theme.NewSelector(catalog.Default(), c)
	sel.Resolve(catalog.FamilyMoodIndicator, "great", catalog.ThemeDark, catalog.StateNone)
	sel.Resolve(catalog.FamilyMoodIndicator, "bad", catalog.ThemeDark, catalog.StateNone)
	sel.Resolve(catalog.FamilyMoodIndicator, "ecstatic", catalog.ThemeLight, catalog.StateNone)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Resolutions(catalog.FamilyMoodIndicator, theme.OutcomeExact)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Resolutions(catalog.FamilyMoodIndicator, theme.OutcomeThemeDropped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Resolutions(catalog.FamilyMoodIndicator, theme.OutcomeVariantDefault)))
	assert.Zero(t, testutil.ToFloat64(c.Resolutions(catalog.FamilyMoodIndicator, theme.OutcomeStateDropped)))
}

func TestCollector_Navigations(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	dests, err := router.NewRegistry(router.Destination{Screen: "Home"})
	require.NoError(t, err)

	r := router.New(router.NewStack()).Observe(c)
	require.NoError(t, r.Route(dests.Navigate("Home", nil)))
	require.NoError(t, r.Route(router.Back()))

	expected := `
# HELP serenity_navigations_total Routed navigation requests by destination and presentation.
# TYPE serenity_navigations_total counter
serenity_navigations_total{presentation="pop",screen="back"} 1
serenity_navigations_total{presentation="push",screen="Home"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "serenity_navigations_total"))
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
