// Package theme picks the correct catalog entry for the active theme and
// interaction state.
//
// Resolution never fails. When the exact key is missing, axes are relaxed in
// a fixed order: the state axis is dropped before the theme axis, because
// visual correctness depends more on theme than on interaction state. If the
// variant has nothing usable, the same chain runs for the family default.
package theme

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
)

// Outcome records which step of the fallback chain produced a handle.
type Outcome int

const (
	OutcomeExact          Outcome = iota // The requested key was registered
	OutcomeStateDropped                  // Found after dropping the state axis
	OutcomeThemeDropped                  // Found on the light axis
	OutcomeVariantDefault                // Fell back to the family default variant
)

func (o Outcome) String() string {
	switch o {
	case OutcomeExact:
		return "exact"
	case OutcomeStateDropped:
		return "state-dropped"
	case OutcomeThemeDropped:
		return "theme-dropped"
	case OutcomeVariantDefault:
		return "variant-default"
	default:
		return "unknown"
	}
}

// Observer is notified of every resolution. Implementations must not block.
type Observer interface {
	Resolved(key catalog.ResourceKey, handle catalog.AssetHandle, outcome Outcome)
}

// Resolution is the detailed result of Selector.ResolveDetailed.
type Resolution struct {
	Handle  catalog.AssetHandle
	Key     catalog.ResourceKey // The key that matched
	Outcome Outcome
}

// Selector resolves (family, variant, theme, state) against a Catalog.
type Selector struct {
	catalog   *catalog.Catalog
	observers []Observer
}

// NewSelector creates a Selector over c.
func NewSelector(c *catalog.Catalog, observers ...Observer) *Selector {
	return &Selector{catalog: c, observers: observers}
}

// Resolve returns the most specific handle available for the request.
func (s *Selector) Resolve(family catalog.Family, variant string, theme catalog.Theme, state catalog.State) catalog.AssetHandle {
	return s.ResolveDetailed(family, variant, theme, state).Handle
}

// ResolveDetailed resolves and reports which key matched and how.
// The chain is:
//
//	(F, V, T, S) -> (F, V, T) -> (F, V, light)
//	(F, D, T, S) -> (F, D, T) -> (F, D, light) -> Lookup(F, D)
//
// where D is the family default variant. Undeclared families panic.
func (s *Selector) ResolveDetailed(family catalog.Family, variant string, theme catalog.Theme, state catalog.State) Resolution {
	requested := catalog.ResourceKey{Family: family, Variant: variant, Theme: theme, State: state}

	res, ok := s.probe(requested)
	if !ok {
		def := s.catalog.DefaultVariant(family)
		res, ok = s.probe(catalog.ResourceKey{Family: family, Variant: def, Theme: theme, State: state})
		if !ok {
			key := catalog.Key(family, def)
			res = Resolution{Handle: s.catalog.Lookup(key), Key: key}
		}
		res.Outcome = OutcomeVariantDefault
	}

	internal.GetInternalLogger().Debug("Resolved asset",
		"requested", requested.String(),
		"matched", res.Key.String(),
		"outcome", res.Outcome.String(),
	)
	for _, o := range s.observers {
		o.Resolved(requested, res.Handle, res.Outcome)
	}
	return res
}

// probe walks the axis relaxation for a single variant.
func (s *Selector) probe(key catalog.ResourceKey) (Resolution, bool) {
	if key.State != catalog.StateNone {
		if h, ok := s.catalog.Find(key); ok {
			return Resolution{Handle: h, Key: key, Outcome: OutcomeExact}, true
		}
	}

	stateless := key.WithState(catalog.StateNone)
	if h, ok := s.catalog.Find(stateless); ok {
		outcome := OutcomeExact
		if key.State != catalog.StateNone {
			outcome = OutcomeStateDropped
		}
		return Resolution{Handle: h, Key: stateless, Outcome: outcome}, true
	}

	if key.Theme != catalog.ThemeLight {
		light := stateless.WithTheme(catalog.ThemeLight)
		if h, ok := s.catalog.Find(light); ok {
			return Resolution{Handle: h, Key: light, Outcome: OutcomeThemeDropped}, true
		}
	}

	return Resolution{}, false
}
