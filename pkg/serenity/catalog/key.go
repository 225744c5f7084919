package catalog

import (
	"fmt"
	"strings"
)

// Family is a closed category of related resources sharing one default variant.
type Family string

const (
	FamilyMoodIndicator Family = "mood-indicator"
	FamilySleepSound    Family = "sleep-sound"
	FamilyIllustration  Family = "illustration"
	FamilyExploreBanner Family = "explore-banner"
	FamilyTabIcon       Family = "tab-icon"
	FamilyPlayerControl Family = "player-control"
	FamilyPlanBadge     Family = "plan-badge"
	FamilySoundCover    Family = "sound-cover"
)

// Families lists every known family. The set is fixed at compile time.
var Families = []Family{
	FamilyMoodIndicator,
	FamilySleepSound,
	FamilyIllustration,
	FamilyExploreBanner,
	FamilyTabIcon,
	FamilyPlayerControl,
	FamilyPlanBadge,
	FamilySoundCover,
}

// IsKnown reports whether f is one of Families.
func (f Family) IsKnown() bool {
	for _, known := range Families {
		if f == known {
			return true
		}
	}
	return false
}

// Theme is the light/dark axis of a resource key. Light is the base axis.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// ParseTheme accepts "light" or "dark" (case-insensitive).
func ParseTheme(raw string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q", raw)
	}
}

// State is the interaction axis of a resource key.
type State int

const (
	StateNone State = iota // No interaction axis
	StateSelected
	StateUnselected
)

func (s State) String() string {
	switch s {
	case StateNone:
		return ""
	case StateSelected:
		return "selected"
	case StateUnselected:
		return "unselected"
	default:
		return "unknown"
	}
}

// ParseState accepts "", "none", "selected" or "unselected".
func ParseState(raw string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return StateNone, nil
	case "selected":
		return StateSelected, nil
	case "unselected":
		return StateUnselected, nil
	default:
		return StateNone, fmt.Errorf("unknown state %q", raw)
	}
}

// AssetHandle is an opaque reference to a binary artifact in the asset tree.
// The core never opens it.
type AssetHandle string

// ResourceKey identifies one asset. Zero Theme and State mean the base axes.
type ResourceKey struct {
	Family  Family
	Variant string
	Theme   Theme
	State   State
}

// Key builds the base key for family and variant.
func Key(family Family, variant string) ResourceKey {
	return ResourceKey{Family: family, Variant: variant}
}

// WithTheme returns a copy of k on the given theme axis.
func (k ResourceKey) WithTheme(t Theme) ResourceKey {
	k.Theme = t
	return k
}

// WithState returns a copy of k on the given state axis.
func (k ResourceKey) WithState(s State) ResourceKey {
	k.State = s
	return k
}

func (k ResourceKey) String() string {
	s := fmt.Sprintf("%s/%s@%s", k.Family, k.Variant, k.Theme)
	if k.State != StateNone {
		s += "+" + k.State.String()
	}
	return s
}
