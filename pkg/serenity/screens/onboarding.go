package screens

import (
	"strconv"

	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// OnboardingSteps is the number of onboarding pages.
const OnboardingSteps = 3

type onboarding struct {
	deps   Deps
	wizard flow.Wizard
}

func newOnboarding(deps Deps) *onboarding {
	next := deps.Registry.MustTarget(Subscription, nil, router.PresentReplace)
	return &onboarding{deps: deps, wizard: flow.NewWizard(OnboardingSteps, 0, next)}
}

func (s *onboarding) Name() router.Screen { return Onboarding }

func (s *onboarding) Title() string { return i18n.Text("screen_onboarding", nil) }

func (s *onboarding) Caption() string {
	return stepCaption(s.wizard)
}

func (s *onboarding) Handle(in constants.Input) flow.Effect {
	var eff flow.Effect
	switch in {
	case constants.InputNext, constants.InputRight:
		s.wizard, eff = s.wizard.Advance()
	case constants.InputBack, constants.InputLeft:
		s.wizard, eff = s.wizard.Retreat()
	case constants.InputConfirm:
		s.wizard, eff = s.wizard.Skip()
	}
	return eff
}

func (s *onboarding) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyIllustration, strconv.Itoa(s.wizard.Step()+1), catalog.StateNone)
}

func (s *onboarding) Tabs() []Tab { return nil }

func stepCaption(w flow.Wizard) string {
	return i18n.Text("onboarding_step", map[string]any{"Step": w.Step() + 1, "Steps": w.Steps()})
}

type subscription struct {
	deps     Deps
	plan     flow.Choice[Plan]
	checkout router.Target
}

func newSubscription(deps Deps) *subscription {
	return &subscription{
		deps:     deps,
		plan:     flow.NewChoice(Plans),
		checkout: deps.Registry.DeclaredTarget(Checkout, nil, ParamPlan),
	}
}

func (s *subscription) Name() router.Screen { return Subscription }

func (s *subscription) Title() string { return i18n.Text("screen_subscription", nil) }

func (s *subscription) Caption() string { return Label(Plans, s.plan.Current()) }

func (s *subscription) Handle(in constants.Input) flow.Effect {
	var eff flow.Effect
	switch in {
	case constants.InputLeft:
		s.plan, eff = s.plan.Prev()
	case constants.InputRight, constants.InputNext:
		s.plan, eff = s.plan.Next()
	case constants.InputConfirm:
		internal.GetInternalLogger().Debug("Plan chosen", "plan", string(s.plan.Current()))
		eff = s.plan.Confirm(s.checkout, ParamPlan)
	case constants.InputBack:
		eff = flow.Navigate(router.Back())
	}
	return eff
}

func (s *subscription) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyPlanBadge, string(s.plan.Current()), catalog.StateSelected)
}

func (s *subscription) Tabs() []Tab {
	return choiceStrip(s.deps, catalog.FamilyPlanBadge, s.plan)
}

// checkout shows the chosen plan. Payment is handled outside the app core;
// the screen only closes.
type checkout struct {
	deps Deps
	plan Plan
}

func newCheckout(deps Deps, raw string) (*checkout, error) {
	plan, err := Plans.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &checkout{deps: deps, plan: plan}, nil
}

func (s *checkout) Name() router.Screen { return Checkout }

func (s *checkout) Title() string { return i18n.Text("screen_checkout", nil) }

func (s *checkout) Caption() string { return Label(Plans, s.plan) }

func (s *checkout) Handle(in constants.Input) flow.Effect {
	if in == constants.InputBack || in == constants.InputConfirm {
		return flow.Navigate(router.Back())
	}
	return flow.None()
}

func (s *checkout) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyPlanBadge, string(s.plan), catalog.StateSelected)
}

func (s *checkout) Tabs() []Tab { return nil }
