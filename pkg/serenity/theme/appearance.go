package theme

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
)

// Appearance holds the app-wide theme preference.
// Renderers compare Generation between frames and drop anything cached
// under an older generation.
type Appearance struct {
	theme      catalog.Theme
	generation uint64
}

// NewAppearance creates an Appearance starting on t.
func NewAppearance(t catalog.Theme) *Appearance {
	return &Appearance{theme: t}
}

// Theme returns the active theme.
func (a *Appearance) Theme() catalog.Theme {
	return a.theme
}

// Generation increments on every effective theme change.
func (a *Appearance) Generation() uint64 {
	return a.generation
}

// SetTheme switches to t. Setting the active theme again is a no-op.
func (a *Appearance) SetTheme(t catalog.Theme) {
	if t == a.theme {
		return
	}
	internal.GetInternalLogger().Debug("Theme changed", "from", a.theme.String(), "to", t.String())
	a.theme = t
	a.generation++
}

// IsDark reports whether the dark theme is active.
func (a *Appearance) IsDark() bool {
	return a.theme == catalog.ThemeDark
}
