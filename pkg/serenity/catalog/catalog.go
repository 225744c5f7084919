// Package catalog maps semantic resource keys to opaque asset handles.
//
// A Catalog is assembled once with a Builder during startup and is immutable
// afterwards, so it can be shared between screens without locking.
//
// Every family declares a default variant. Lookups for variants the family
// does not carry resolve to that default instead of failing:
//
//	b := catalog.NewBuilder()
//	b.Default(catalog.FamilyMoodIndicator, "okay")
//	b.Register(catalog.Key(catalog.FamilyMoodIndicator, "okay"), "moods/okay.png")
//	b.Register(catalog.Key(catalog.FamilyMoodIndicator, "great"), "moods/great.png")
//	c, err := b.Build()
//
//	c.Lookup(catalog.Key(catalog.FamilyMoodIndicator, "ecstatic")) // "moods/okay.png"
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
)

var (
	// ErrUnknownFamily indicates a family that the catalog does not declare.
	ErrUnknownFamily = errors.New("unknown resource family")

	// ErrNoDefault indicates a family whose default variant has no base entry.
	ErrNoDefault = errors.New("family default variant is not registered")

	// ErrDuplicateKey indicates a key registered twice.
	ErrDuplicateKey = errors.New("duplicate resource key")

	// ErrFrozen indicates registration after Build.
	ErrFrozen = errors.New("catalog is frozen")
)

// Builder collects registrations for a Catalog.
type Builder struct {
	entries  map[ResourceKey]AssetHandle
	defaults map[Family]string
	errs     []error
	built    bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		entries:  make(map[ResourceKey]AssetHandle),
		defaults: make(map[Family]string),
	}
}

// Register adds a handle for key. Problems are reported by Build.
// Registering after Build panics.
func (b *Builder) Register(key ResourceKey, handle AssetHandle) *Builder {
	if b.built {
		fault.Panic("catalog.register", fmt.Errorf("%w: %s", ErrFrozen, key))
	}
	if !key.Family.IsKnown() {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrUnknownFamily, key.Family))
		return b
	}
	if _, exists := b.entries[key]; exists {
		b.errs = append(b.errs, fmt.Errorf("%w: %s", ErrDuplicateKey, key))
		return b
	}
	b.entries[key] = handle
	return b
}

// Default declares the default variant of family.
func (b *Builder) Default(family Family, variant string) *Builder {
	if b.built {
		fault.Panic("catalog.default", fmt.Errorf("%w: %s", ErrFrozen, family))
	}
	if !family.IsKnown() {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrUnknownFamily, family))
		return b
	}
	b.defaults[family] = variant
	return b
}

// Build validates the registrations and freezes them into a Catalog.
// Every family with entries must declare a default, and the default's base
// key (light theme, no state) must be registered.
func (b *Builder) Build() (*Catalog, error) {
	errs := append([]error(nil), b.errs...)

	for key := range b.entries {
		if _, ok := b.defaults[key.Family]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s declares no default", ErrNoDefault, key.Family))
			// One report per family is enough.
			b.defaults[key.Family] = ""
		}
	}

	for family, variant := range b.defaults {
		if variant == "" {
			continue
		}
		if _, ok := b.entries[Key(family, variant)]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoDefault, Key(family, variant)))
		}
	}

	if len(errs) > 0 {
		sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
		return nil, errors.Join(errs...)
	}

	b.built = true

	c := &Catalog{
		entries:  make(map[ResourceKey]AssetHandle, len(b.entries)),
		defaults: make(map[Family]string, len(b.defaults)),
	}
	for k, v := range b.entries {
		c.entries[k] = v
	}
	for k, v := range b.defaults {
		c.defaults[k] = v
	}

	internal.GetInternalLogger().Debug("Catalog built", "entries", len(c.entries), "families", len(c.defaults))
	return c, nil
}

// Catalog is a frozen mapping from ResourceKey to AssetHandle.
type Catalog struct {
	entries  map[ResourceKey]AssetHandle
	defaults map[Family]string
}

// Lookup returns the handle for key, or the family default handle if key is
// not registered. Looking up a family the catalog does not declare panics.
func (c *Catalog) Lookup(key ResourceKey) AssetHandle {
	if handle, ok := c.Find(key); ok {
		return handle
	}

	def := c.DefaultVariant(key.Family)
	internal.GetInternalLogger().Debug("Catalog miss, using family default", "key", key.String(), "default", def)
	return c.entries[Key(key.Family, def)]
}

// Find probes for an exact key. It panics for undeclared families.
func (c *Catalog) Find(key ResourceKey) (AssetHandle, bool) {
	c.mustKnow("catalog.find", key.Family)
	handle, ok := c.entries[key]
	return handle, ok
}

// DefaultVariant returns the designated default variant of family.
func (c *Catalog) DefaultVariant(family Family) string {
	c.mustKnow("catalog.default", family)
	return c.defaults[family]
}

// Declares reports whether the catalog carries family.
func (c *Catalog) Declares(family Family) bool {
	_, ok := c.defaults[family]
	return ok
}

// Variants returns the distinct variants registered for family, sorted.
func (c *Catalog) Variants(family Family) []string {
	c.mustKnow("catalog.variants", family)

	seen := make(map[string]struct{})
	for key := range c.entries {
		if key.Family == family {
			seen[key.Variant] = struct{}{}
		}
	}

	variants := make([]string, 0, len(seen))
	for v := range seen {
		variants = append(variants, v)
	}
	sortVariants(variants)
	return variants
}

// Families returns the families the catalog declares, sorted.
func (c *Catalog) Families() []Family {
	families := make([]Family, 0, len(c.defaults))
	for f := range c.defaults {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// Len returns the number of registered keys.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func (c *Catalog) mustKnow(op string, family Family) {
	if _, ok := c.defaults[family]; !ok {
		fault.Panic(op, fmt.Errorf("%w: %q", ErrUnknownFamily, family))
	}
}

// sortVariants orders numeric variants numerically and everything else lexically,
// numbers first.
func sortVariants(variants []string) {
	sort.Slice(variants, func(i, j int) bool {
		ni, iNum := variantNumber(variants[i])
		nj, jNum := variantNumber(variants[j])
		switch {
		case iNum && jNum:
			return ni < nj
		case iNum != jNum:
			return iNum
		default:
			return variants[i] < variants[j]
		}
	})
}

func variantNumber(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
