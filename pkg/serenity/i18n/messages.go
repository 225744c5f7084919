package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

// english holds the source text of every message, used when a translation
// is missing.
var english = map[string]string{
	"screen_onboarding":    "Welcome",
	"screen_subscription":  "Choose your plan",
	"screen_checkout":      "Checkout",
	"screen_home":          "Home",
	"screen_mood_check_in": "How are you feeling?",
	"screen_explore":       "Explore",
	"screen_sleep_sounds":  "Sleep sounds",
	"screen_sound_player":  "Now playing",
	"screen_profile":       "Profile",
	"onboarding_step":      "Step {{.Step}} of {{.Steps}}",
	"mood_great":           "Great",
	"mood_good":            "Good",
	"mood_okay":            "Okay",
	"mood_bad":             "Bad",
	"mood_awful":           "Awful",
	"explore_all":          "All",
	"explore_sleep":        "Sleep",
	"explore_meditation":   "Meditation",
	"explore_stories":      "Stories",
	"explore_music":        "Music",
	"sound_rain":           "Rain",
	"sound_ocean":          "Ocean",
	"sound_forest":         "Forest",
	"sound_fire":           "Fireplace",
	"sound_wind":           "Wind",
	"plan_monthly":         "Monthly",
	"plan_yearly":          "Yearly",
	"plan_lifetime":        "Lifetime",
	"player_playing":       "Playing",
	"player_paused":        "Paused",
	"profile_dark_mode":    "Dark mode",
}

// Message returns the message for id with its English source text.
func Message(id string) *goi18n.Message {
	other, ok := english[id]
	if !ok {
		other = id
	}
	return &goi18n.Message{ID: id, Other: other}
}

// Text localizes the message id.
func Text(id string, data map[string]any) string {
	return Localize(Message(id), data)
}

// Label localizes a member of a choice, such as Label("mood", "great").
func Label(group, member string) string {
	return Text(group+"_"+member, nil)
}
