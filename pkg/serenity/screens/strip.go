package screens

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
)

// hubTab is one entry of the main tab bar.
type hubTab struct {
	variant string
	title   string
	screen  string
}

var hubTabs = []hubTab{
	{variant: "home", title: "screen_home", screen: string(Home)},
	{variant: "explore", title: "screen_explore", screen: string(Explore)},
	{variant: "sleep", title: "screen_sleep_sounds", screen: string(SleepSounds)},
	{variant: "profile", title: "screen_profile", screen: string(Profile)},
}

// tabBar resolves the main tab bar with the tab of current selected.
func tabBar(deps Deps, current string) []Tab {
	tabs := make([]Tab, 0, len(hubTabs))
	for _, ht := range hubTabs {
		state := catalog.StateUnselected
		if ht.variant == current {
			state = catalog.StateSelected
		}
		tabs = append(tabs, Tab{
			Name:     ht.screen,
			Label:    i18n.Text(ht.title, nil),
			Handle:   deps.resolve(catalog.FamilyTabIcon, ht.variant, state),
			Selected: state == catalog.StateSelected,
		})
	}
	return tabs
}

// choiceStrip resolves one entry per domain member from family, with the
// current member selected.
func choiceStrip[T ~string](deps Deps, family catalog.Family, c flow.Choice[T]) []Tab {
	members := c.Domain().Members()
	tabs := make([]Tab, 0, len(members))
	for _, m := range members {
		state := catalog.StateUnselected
		if m == c.Current() {
			state = catalog.StateSelected
		}
		tabs = append(tabs, Tab{
			Name:     string(m),
			Label:    Label(c.Domain(), m),
			Handle:   deps.resolve(family, string(m), state),
			Selected: state == catalog.StateSelected,
		})
	}
	return tabs
}
