// Package screens implements the app's screens on top of the flow state
// shapes: each screen owns one flow state, turns abstract inputs into
// transitions, resolves what it displays through the theme selector and
// returns a navigation request when its flow finishes.
package screens

import (
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"github.com/serenity-wellness/serenity/pkg/serenity/theme"
)

// Screen identifiers
const (
	Onboarding   router.Screen = "Onboarding"
	Subscription router.Screen = "Subscription"
	Checkout     router.Screen = "Checkout"
	Home         router.Screen = "Home"
	MoodCheckIn  router.Screen = "MoodCheckIn"
	Explore      router.Screen = "Explore"
	SleepSounds  router.Screen = "SleepSounds"
	SoundPlayer  router.Screen = "SoundPlayer"
	Profile      router.Screen = "Profile"
)

// Navigation parameter names.
const (
	ParamPlan     = "plan"
	ParamStep     = "step"
	ParamCategory = "category"
	ParamSound    = "sound"
)

// Destinations declares every screen with its parameters and presentation.
func Destinations() []router.Destination {
	return []router.Destination{
		{Screen: Onboarding, Presentation: router.PresentReplace},
		{Screen: Subscription},
		{Screen: Checkout, Params: []router.ParamSpec{{Name: ParamPlan, Kind: router.KindString}}, Presentation: router.PresentModal},
		{Screen: Home},
		{Screen: MoodCheckIn, Params: []router.ParamSpec{{Name: ParamStep, Kind: router.KindInt}}},
		{Screen: Explore, Params: []router.ParamSpec{{Name: ParamCategory, Kind: router.KindString}}},
		{Screen: SleepSounds},
		{Screen: SoundPlayer, Params: []router.ParamSpec{{Name: ParamSound, Kind: router.KindString}}, Presentation: router.PresentModal},
		{Screen: Profile},
	}
}

// NewRegistry builds the router registry of Destinations.
func NewRegistry() (*router.Registry, error) {
	return router.NewRegistry(Destinations()...)
}

// Screen is a mounted screen instance. It lives from mount until the first
// terminal effect returned by Handle.
type Screen interface {
	// Name returns the destination the screen was mounted as.
	Name() router.Screen
	// Title returns the localized screen title.
	Title() string
	// Caption returns a localized line describing the current state, if any.
	Caption() string
	// Handle applies one input to the screen's flow state.
	Handle(in constants.Input) flow.Effect
	// Display resolves the main asset for the current state and theme.
	Display() catalog.AssetHandle
	// Tabs resolves the strip of selectable items shown under the display.
	Tabs() []Tab
}

// Tab is one entry of a tab strip or choice strip.
type Tab struct {
	Name     string
	Label    string
	Handle   catalog.AssetHandle
	Selected bool
}

// AudioEngine plays sleep sounds. Playback itself is outside the core.
type AudioEngine interface {
	Play(sound catalog.AssetHandle)
	Pause()
}

// LoggingAudio is an AudioEngine that only logs.
type LoggingAudio struct{}

func (LoggingAudio) Play(sound catalog.AssetHandle) {
	internal.GetLogger().Info("Audio playing", "sound", string(sound))
}

func (LoggingAudio) Pause() {
	internal.GetLogger().Info("Audio paused")
}

// Deps are the collaborators every screen needs.
type Deps struct {
	Selector   *theme.Selector
	Appearance *theme.Appearance
	Registry   *router.Registry
	Audio      AudioEngine
}

func (d Deps) validate() error {
	switch {
	case d.Selector == nil:
		return fmt.Errorf("screens: no selector")
	case d.Appearance == nil:
		return fmt.Errorf("screens: no appearance")
	case d.Registry == nil:
		return fmt.Errorf("screens: no registry")
	}
	return nil
}

// resolve picks a handle on the active theme.
func (d Deps) resolve(family catalog.Family, variant string, state catalog.State) catalog.AssetHandle {
	return d.Selector.Resolve(family, variant, d.Appearance.Theme(), state)
}

// Mount creates the screen a request asks for. The request's parameters are
// checked against the registry and used as seeds; seeds outside their domain
// are reported as errors wrapping flow.ErrOutOfDomain.
func Mount(req router.Request, deps Deps) (Screen, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if req.IsZero() || req.IsBack() {
		return nil, fmt.Errorf("screens: cannot mount %q", req.Describe())
	}
	if err := deps.Registry.Validate(req.Screen(), req.Params()); err != nil {
		return nil, err
	}
	if deps.Audio == nil {
		deps.Audio = LoggingAudio{}
	}

	var (
		s   Screen
		err error
	)
	switch req.Screen() {
	case Onboarding:
		s = newOnboarding(deps)
	case Subscription:
		s = newSubscription(deps)
	case Checkout:
		s, err = newCheckout(deps, req.StringParam(ParamPlan))
	case Home:
		s = newHome(deps)
	case MoodCheckIn:
		s, err = newMoodCheckIn(deps, req.IntParam(ParamStep))
	case Explore:
		s, err = newExplore(deps, req.StringParam(ParamCategory))
	case SleepSounds:
		s = newSleepSounds(deps)
	case SoundPlayer:
		s, err = newSoundPlayer(deps, req.StringParam(ParamSound))
	case Profile:
		s = newProfile(deps)
	default:
		return nil, fmt.Errorf("%w: %q has no screen implementation", router.ErrUnknownScreen, req.Screen())
	}
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", req.Screen(), err)
	}

	internal.GetInternalLogger().Debug("Screen mounted", "screen", string(req.Screen()), "request", req.ID())
	return s, nil
}
