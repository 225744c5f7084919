package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moodCatalog(t *testing.T) *Catalog {
	t.Helper()

	b := NewBuilder().
		Default(FamilyMoodIndicator, "okay").
		Register(Key(FamilyMoodIndicator, "okay"), "moods/okay.png").
		Register(Key(FamilyMoodIndicator, "great"), "moods/great.png").
		Register(Key(FamilyMoodIndicator, "bad"), "moods/bad.png").
		Register(Key(FamilyMoodIndicator, "great").WithTheme(ThemeDark), "moods/great-dark.png")

	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestLookup(t *testing.T) {
	c := moodCatalog(t)

	tests := []struct {
		name string
		key  ResourceKey
		want AssetHandle
	}{
		{"exact base", Key(FamilyMoodIndicator, "great"), "moods/great.png"},
		{"exact dark", Key(FamilyMoodIndicator, "great").WithTheme(ThemeDark), "moods/great-dark.png"},
		{"unknown variant", Key(FamilyMoodIndicator, "ecstatic"), "moods/okay.png"},
		{"empty variant", Key(FamilyMoodIndicator, ""), "moods/okay.png"},
		{"missing axis is a miss", Key(FamilyMoodIndicator, "bad").WithTheme(ThemeDark), "moods/okay.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Lookup(tt.key))
		})
	}
}

func TestLookup_UnknownVariantMatchesDefault(t *testing.T) {
	c, err := FromManifest(DefaultManifest(), nil)
	require.NoError(t, err)

	for _, family := range c.Families() {
		def := c.Lookup(Key(family, c.DefaultVariant(family)))
		for _, variant := range []string{"", "nope", "999", "GREAT"} {
			assert.Equal(t, def, c.Lookup(Key(family, variant)), "family %s variant %q", family, variant)
		}
	}
}

func TestLookup_UnknownFamilyPanics(t *testing.T) {
	c := moodCatalog(t)

	err := fault.Catch(func() { c.Lookup(Key(FamilySleepSound, "rain")) })
	require.Error(t, err)
	assert.True(t, fault.IsProgrammingError(err))
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestBuild_Errors(t *testing.T) {
	t.Run("missing default declaration", func(t *testing.T) {
		_, err := NewBuilder().Register(Key(FamilySleepSound, "rain"), "rain.mp3").Build()
		assert.ErrorIs(t, err, ErrNoDefault)
	})

	t.Run("default without base entry", func(t *testing.T) {
		_, err := NewBuilder().
			Default(FamilySleepSound, "rain").
			Register(Key(FamilySleepSound, "rain").WithTheme(ThemeDark), "rain-dark.mp3").
			Build()
		assert.ErrorIs(t, err, ErrNoDefault)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := NewBuilder().
			Default(FamilySleepSound, "rain").
			Register(Key(FamilySleepSound, "rain"), "a.mp3").
			Register(Key(FamilySleepSound, "rain"), "b.mp3").
			Build()
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})

	t.Run("unknown family", func(t *testing.T) {
		_, err := NewBuilder().Default("weather", "sun").Build()
		assert.ErrorIs(t, err, ErrUnknownFamily)
	})
}

func TestBuild_FreezesBuilder(t *testing.T) {
	b := NewBuilder().
		Default(FamilySleepSound, "rain").
		Register(Key(FamilySleepSound, "rain"), "rain.mp3")
	_, err := b.Build()
	require.NoError(t, err)

	err = fault.Catch(func() { b.Register(Key(FamilySleepSound, "ocean"), "ocean.mp3") })
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestVariants(t *testing.T) {
	b := NewBuilder().Default(FamilyIllustration, "1")
	for _, v := range []string{"10", "2", "1", "cover"} {
		b.Register(Key(FamilyIllustration, v), AssetHandle("ill/"+v+".png"))
	}
	b.Register(Key(FamilyIllustration, "2").WithTheme(ThemeDark), "ill/2-dark.png")
	c, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "10", "cover"}, c.Variants(FamilyIllustration))
	assert.Equal(t, []Family{FamilyIllustration}, c.Families())
	assert.Equal(t, 5, c.Len())
	assert.True(t, c.Declares(FamilyIllustration))
	assert.False(t, c.Declares(FamilyTabIcon))
}

func TestDefaultManifest(t *testing.T) {
	c, err := FromManifest(DefaultManifest(), nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, Families, c.Families())
	assert.Equal(t, "okay", c.DefaultVariant(FamilyMoodIndicator))
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, c.Variants(FamilyIllustration))

	// Only the light entry exists for "bad".
	_, ok := c.Find(Key(FamilyMoodIndicator, "bad").WithTheme(ThemeDark))
	assert.False(t, ok)
}

func TestLoad_YAMLWithGlob(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
families:
  - name: illustration
    default: "1"
    assets:
      - glob: "ill/*.png"
      - variant: "1"
        theme: dark
        path: ill/dark/a.png
`)},
		"ill/b.png":      {Data: []byte("b")},
		"ill/a.png":      {Data: []byte("a")},
		"ill/c.png":      {Data: []byte("c")},
		"ill/dark/a.png": {Data: []byte("da")},
	}

	c, err := Load(fsys, "catalog.yaml", fsys)
	require.NoError(t, err)

	assert.Equal(t, AssetHandle("ill/a.png"), c.Lookup(Key(FamilyIllustration, "1")))
	assert.Equal(t, AssetHandle("ill/b.png"), c.Lookup(Key(FamilyIllustration, "2")))
	assert.Equal(t, AssetHandle("ill/c.png"), c.Lookup(Key(FamilyIllustration, "3")))
	assert.Equal(t, AssetHandle("ill/dark/a.png"), c.Lookup(Key(FamilyIllustration, "1").WithTheme(ThemeDark)))
}

func TestLoad_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.json":   {Data: []byte(`{}`)},
		"ill/readme.txt": {Data: []byte("not an image")},
		"bad.toml": {Data: []byte(`
[[family]]
name = "illustration"
default = "1"
  [[family.asset]]
  glob = "ill/*.png"
  [[family.asset]]
  variant = "1"
  theme = "sepia"
  path = "x.png"
`)},
	}

	_, err := Load(fsys, "catalog.json", fsys)
	assert.ErrorIs(t, err, ErrManifestFormat)

	_, err = Load(fsys, "bad.toml", fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no matches")
	assert.Contains(t, err.Error(), "unknown theme")

	_, err = Load(fsys, "absent.toml", fsys)
	assert.Error(t, err)
}

func TestParseAxes(t *testing.T) {
	th, err := ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)

	st, err := ParseState("unselected")
	require.NoError(t, err)
	assert.Equal(t, StateUnselected, st)

	_, err = ParseState("hover")
	assert.Error(t, err)

	assert.Equal(t, "mood-indicator/great@dark+selected",
		Key(FamilyMoodIndicator, "great").WithTheme(ThemeDark).WithState(StateSelected).String())
}
