package screens

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// home is the hub. It holds no flow state of its own; every mapped input
// leaves for another screen.
type home struct {
	deps Deps
}

func newHome(deps Deps) *home {
	return &home{deps: deps}
}

func (s *home) Name() router.Screen { return Home }

func (s *home) Title() string { return i18n.Text("screen_home", nil) }

func (s *home) Caption() string { return "" }

func (s *home) Handle(in constants.Input) flow.Effect {
	reg := s.deps.Registry
	switch in {
	case constants.InputNext, constants.InputConfirm:
		return flow.Navigate(reg.Navigate(MoodCheckIn, router.Params{ParamStep: 0}))
	case constants.InputLeft:
		return flow.Navigate(reg.Navigate(Explore, router.Params{ParamCategory: string(Categories.Default())}))
	case constants.InputRight:
		return flow.Navigate(reg.Navigate(SleepSounds, nil))
	case constants.InputToggle:
		return flow.Navigate(reg.Navigate(Profile, nil))
	case constants.InputBack:
		return flow.Navigate(router.Back())
	}
	return flow.None()
}

func (s *home) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyIllustration, "1", catalog.StateNone)
}

func (s *home) Tabs() []Tab { return tabBar(s.deps, "home") }

// profile switches the app between light and dark.
type profile struct {
	deps Deps
	dark flow.Toggle
}

func newProfile(deps Deps) *profile {
	return &profile{deps: deps, dark: flow.NewToggle(deps.Appearance.IsDark())}
}

func (s *profile) Name() router.Screen { return Profile }

func (s *profile) Title() string { return i18n.Text("screen_profile", nil) }

func (s *profile) Caption() string { return i18n.Text("profile_dark_mode", nil) }

func (s *profile) Handle(in constants.Input) flow.Effect {
	switch in {
	case constants.InputToggle, constants.InputConfirm:
		var eff flow.Effect
		s.dark, eff = s.dark.Activate()
		if s.dark.On() {
			s.deps.Appearance.SetTheme(catalog.ThemeDark)
		} else {
			s.deps.Appearance.SetTheme(catalog.ThemeLight)
		}
		return eff
	case constants.InputBack:
		return flow.Navigate(router.Back())
	}
	return flow.None()
}

func (s *profile) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyTabIcon, "profile", catalog.StateSelected)
}

func (s *profile) Tabs() []Tab { return tabBar(s.deps, "profile") }
