package screens

import (
	"fmt"
	"strconv"

	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// MoodCheckInSteps is the number of check-in pages. The first asks for the
// mood, the rest are reflection prompts.
const MoodCheckInSteps = 4

type moodCheckIn struct {
	deps   Deps
	wizard flow.Wizard
	mood   flow.Choice[Mood]
}

func newMoodCheckIn(deps Deps, step int) (*moodCheckIn, error) {
	if step < 0 || step >= MoodCheckInSteps {
		return nil, fmt.Errorf("%w: step %d not in [0, %d]", flow.ErrOutOfDomain, step, MoodCheckInSteps-1)
	}
	home := deps.Registry.DeclaredTarget(Home, nil)
	return &moodCheckIn{
		deps:   deps,
		wizard: flow.NewWizard(MoodCheckInSteps, step, home),
		mood:   flow.NewChoice(Moods),
	}, nil
}

func (s *moodCheckIn) Name() router.Screen { return MoodCheckIn }

func (s *moodCheckIn) Title() string { return i18n.Text("screen_mood_check_in", nil) }

func (s *moodCheckIn) Caption() string {
	if s.wizard.IsFirst() {
		return Label(Moods, s.mood.Current())
	}
	return stepCaption(s.wizard)
}

func (s *moodCheckIn) Handle(in constants.Input) flow.Effect {
	var eff flow.Effect
	switch {
	case in == constants.InputNext || in == constants.InputConfirm:
		s.wizard, eff = s.wizard.Advance()
		if eff.Terminal() {
			internal.GetLogger().Info("Mood check-in finished", "mood", string(s.mood.Current()))
		}
	case in == constants.InputBack:
		s.wizard, eff = s.wizard.Retreat()
	case in == constants.InputLeft && s.wizard.IsFirst():
		s.mood, eff = s.mood.Prev()
	case in == constants.InputRight && s.wizard.IsFirst():
		s.mood, eff = s.mood.Next()
	}
	return eff
}

func (s *moodCheckIn) Display() catalog.AssetHandle {
	if s.wizard.IsFirst() {
		return s.deps.resolve(catalog.FamilyMoodIndicator, string(s.mood.Current()), catalog.StateSelected)
	}
	return s.deps.resolve(catalog.FamilyIllustration, strconv.Itoa(s.wizard.Step()+1), catalog.StateNone)
}

func (s *moodCheckIn) Tabs() []Tab {
	if s.wizard.IsFirst() {
		return choiceStrip(s.deps, catalog.FamilyMoodIndicator, s.mood)
	}
	return nil
}

// Mood returns the selected mood.
func (s *moodCheckIn) Mood() Mood { return s.mood.Current() }

// Step returns the wizard step.
func (s *moodCheckIn) Step() int { return s.wizard.Step() }
