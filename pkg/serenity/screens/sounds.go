package screens

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

type sleepSounds struct {
	deps   Deps
	sound  flow.Choice[Sound]
	player router.Target
}

func newSleepSounds(deps Deps) *sleepSounds {
	return &sleepSounds{
		deps:   deps,
		sound:  flow.NewChoice(Sounds),
		player: deps.Registry.DeclaredTarget(SoundPlayer, nil, ParamSound),
	}
}

func (s *sleepSounds) Name() router.Screen { return SleepSounds }

func (s *sleepSounds) Title() string { return i18n.Text("screen_sleep_sounds", nil) }

func (s *sleepSounds) Caption() string { return Label(Sounds, s.sound.Current()) }

func (s *sleepSounds) Handle(in constants.Input) flow.Effect {
	var eff flow.Effect
	switch in {
	case constants.InputLeft:
		s.sound, eff = s.sound.Prev()
	case constants.InputRight, constants.InputNext:
		s.sound, eff = s.sound.Next()
	case constants.InputConfirm:
		eff = s.sound.Confirm(s.player, ParamSound)
	case constants.InputBack:
		eff = flow.Navigate(router.Back())
	}
	return eff
}

func (s *sleepSounds) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilySoundCover, string(s.sound.Current()), catalog.StateNone)
}

func (s *sleepSounds) Tabs() []Tab { return tabBar(s.deps, "sleep") }

// soundPlayer plays one sound. It starts paused; closing it stops playback.
type soundPlayer struct {
	deps    Deps
	sound   Sound
	playing flow.Toggle
}

func newSoundPlayer(deps Deps, raw string) (*soundPlayer, error) {
	sound, err := Sounds.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &soundPlayer{deps: deps, sound: sound, playing: flow.NewToggle(false)}, nil
}

func (s *soundPlayer) Name() router.Screen { return SoundPlayer }

func (s *soundPlayer) Title() string { return Label(Sounds, s.sound) }

func (s *soundPlayer) Caption() string {
	if s.playing.On() {
		return i18n.Text("player_playing", nil)
	}
	return i18n.Text("player_paused", nil)
}

func (s *soundPlayer) Handle(in constants.Input) flow.Effect {
	switch in {
	case constants.InputToggle, constants.InputConfirm:
		var eff flow.Effect
		s.playing, eff = s.playing.Activate()
		if s.playing.On() {
			s.deps.Audio.Play(s.deps.resolve(catalog.FamilySleepSound, string(s.sound), catalog.StateNone))
		} else {
			s.deps.Audio.Pause()
		}
		return eff
	case constants.InputBack:
		if s.playing.On() {
			s.playing, _ = s.playing.Set(false)
			s.deps.Audio.Pause()
		}
		return flow.Navigate(router.Back())
	}
	return flow.None()
}

// Display shows the control that is actionable: pause while playing.
func (s *soundPlayer) Display() catalog.AssetHandle {
	control := "play"
	if s.playing.On() {
		control = "pause"
	}
	return s.deps.resolve(catalog.FamilyPlayerControl, control, catalog.StateNone)
}

func (s *soundPlayer) Tabs() []Tab { return nil }
