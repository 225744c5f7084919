package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed manifests/default.toml
var defaultManifest []byte

// ErrManifestFormat indicates a manifest whose extension is neither TOML nor YAML.
var ErrManifestFormat = errors.New("unsupported manifest format")

// Manifest is the on-disk description of a catalog.
type Manifest struct {
	Families []FamilySpec `toml:"family" yaml:"families"`
}

// FamilySpec declares one family, its default variant and its assets.
type FamilySpec struct {
	Name    string      `toml:"name" yaml:"name"`
	Default string      `toml:"default" yaml:"default"`
	Assets  []AssetSpec `toml:"asset" yaml:"assets"`
}

// AssetSpec is a single asset entry. Either Path or Glob is set.
// Glob matches become numbered variants 1..n in lexical path order.
type AssetSpec struct {
	Variant string `toml:"variant" yaml:"variant"`
	Theme   string `toml:"theme" yaml:"theme"`
	State   string `toml:"state" yaml:"state"`
	Path    string `toml:"path" yaml:"path"`
	Glob    string `toml:"glob" yaml:"glob"`
}

// DecodeManifest parses data as "toml" or "yaml".
func DecodeManifest(data []byte, format string) (*Manifest, error) {
	var m Manifest

	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("decode toml manifest: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrManifestFormat, format)
	}

	return &m, nil
}

// LoadManifest reads and decodes the manifest at name, picking the format
// from its extension.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return DecodeManifest(data, strings.TrimPrefix(path.Ext(name), "."))
}

// DefaultManifest returns the manifest embedded in the binary.
func DefaultManifest() *Manifest {
	m, err := DecodeManifest(defaultManifest, "toml")
	if err != nil {
		// The embedded file is part of the build.
		panic(err)
	}
	return m
}

// Default builds the catalog described by the embedded manifest.
func Default() *Catalog {
	c, err := FromManifest(DefaultManifest(), nil)
	if err != nil {
		panic(err)
	}
	return c
}

// Apply registers every manifest entry on b. Glob entries are expanded
// against assets, which may be nil when the manifest has none.
func (m *Manifest) Apply(b *Builder, assets fs.FS) error {
	var errs []error

	for _, fam := range m.Families {
		family := Family(fam.Name)
		if fam.Default != "" {
			b.Default(family, fam.Default)
		}

		for i, spec := range fam.Assets {
			theme, err := ParseTheme(spec.Theme)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s asset %d: %w", fam.Name, i, err))
				continue
			}
			state, err := ParseState(spec.State)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s asset %d: %w", fam.Name, i, err))
				continue
			}

			switch {
			case spec.Glob != "":
				if err := registerGlob(b, assets, family, theme, state, spec.Glob); err != nil {
					errs = append(errs, fmt.Errorf("%s asset %d: %w", fam.Name, i, err))
				}
			case spec.Path != "" && spec.Variant != "":
				b.Register(ResourceKey{Family: family, Variant: spec.Variant, Theme: theme, State: state}, AssetHandle(spec.Path))
			default:
				errs = append(errs, fmt.Errorf("%s asset %d: needs variant and path, or glob", fam.Name, i))
			}
		}
	}

	return errors.Join(errs...)
}

func registerGlob(b *Builder, assets fs.FS, family Family, theme Theme, state State, pattern string) error {
	if assets == nil {
		return fmt.Errorf("glob %q: no asset filesystem", pattern)
	}

	matches, err := doublestar.Glob(assets, pattern)
	if err != nil {
		return fmt.Errorf("glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("glob %q: no matches", pattern)
	}

	sort.Strings(matches)
	for i, match := range matches {
		key := ResourceKey{Family: family, Variant: strconv.Itoa(i + 1), Theme: theme, State: state}
		b.Register(key, AssetHandle(match))
	}
	return nil
}

// Load reads the manifest at name from manifests and builds a Catalog,
// expanding globs against assets.
func Load(manifests fs.FS, name string, assets fs.FS) (*Catalog, error) {
	m, err := LoadManifest(manifests, name)
	if err != nil {
		return nil, err
	}
	return FromManifest(m, assets)
}

// FromManifest builds a Catalog from an already decoded manifest.
func FromManifest(m *Manifest, assets fs.FS) (*Catalog, error) {
	b := NewBuilder()
	if err := m.Apply(b, assets); err != nil {
		return nil, err
	}
	return b.Build()
}
