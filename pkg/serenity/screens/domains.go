package screens

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/flow"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
)

// Mood is a mood check-in answer.
type Mood string

const (
	MoodGreat Mood = "great"
	MoodGood  Mood = "good"
	MoodOkay  Mood = "okay"
	MoodBad   Mood = "bad"
	MoodAwful Mood = "awful"
)

// Plan is a subscription plan.
type Plan string

const (
	PlanMonthly  Plan = "monthly"
	PlanYearly   Plan = "yearly"
	PlanLifetime Plan = "lifetime"
)

// Category is an explore content category.
type Category string

const (
	CategoryAll        Category = "all"
	CategorySleep      Category = "sleep"
	CategoryMeditation Category = "meditation"
	CategoryStories    Category = "stories"
	CategoryMusic      Category = "music"
)

// Sound is a sleep sound.
type Sound string

const (
	SoundRain   Sound = "rain"
	SoundOcean  Sound = "ocean"
	SoundForest Sound = "forest"
	SoundFire   Sound = "fire"
	SoundWind   Sound = "wind"
)

// Closed domains of the choice screens. Defaults match the catalog defaults
// of the families displaying them.
var (
	Moods      = flow.NewDomain("mood", MoodOkay, MoodGreat, MoodGood, MoodOkay, MoodBad, MoodAwful)
	Plans      = flow.NewDomain("plan", PlanYearly, PlanMonthly, PlanYearly, PlanLifetime)
	Categories = flow.NewDomain("explore", CategoryAll, CategoryAll, CategorySleep, CategoryMeditation, CategoryStories, CategoryMusic)
	Sounds     = flow.NewDomain("sound", SoundRain, SoundRain, SoundOcean, SoundForest, SoundFire, SoundWind)
)

// Label returns the localized name of a domain member.
func Label[T ~string](d flow.Domain[T], v T) string {
	return i18n.Label(d.Name(), string(v))
}
