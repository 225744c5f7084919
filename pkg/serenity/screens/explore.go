package screens

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

type explore struct {
	deps     Deps
	category flow.Choice[Category]
}

func newExplore(deps Deps, raw string) (*explore, error) {
	seed, err := Categories.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &explore{deps: deps, category: flow.SeedChoice(Categories, seed)}, nil
}

func (s *explore) Name() router.Screen { return Explore }

func (s *explore) Title() string { return i18n.Text("screen_explore", nil) }

func (s *explore) Caption() string { return Label(Categories, s.category.Current()) }

func (s *explore) Handle(in constants.Input) flow.Effect {
	var eff flow.Effect
	switch in {
	case constants.InputLeft:
		s.category, eff = s.category.Prev()
	case constants.InputRight, constants.InputNext:
		s.category, eff = s.category.Next()
	case constants.InputBack:
		eff = flow.Navigate(router.Back())
	}
	return eff
}

func (s *explore) Display() catalog.AssetHandle {
	return s.deps.resolve(catalog.FamilyExploreBanner, string(s.category.Current()), catalog.StateNone)
}

func (s *explore) Tabs() []Tab { return tabBar(s.deps, "explore") }
