package i18n

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"es", language.Spanish},
		{"es-MX", language.Spanish},
		{"en-GB", language.English},
		{"ja", language.English},
		{"not a tag!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.in))
		})
	}
}

func TestLocalize(t *testing.T) {
	require.NoError(t, Init("es"))
	t.Cleanup(func() { _ = Init("en") })

	assert.Equal(t, language.Spanish, Language())
	assert.Equal(t, "Inicio", Text("screen_home", nil))
	assert.Equal(t, "Paso 2 de 3", Text("onboarding_step", map[string]any{"Step": 2, "Steps": 3}))
	assert.Equal(t, "Lluvia", Label("sound", "rain"))

	missing := &goi18n.Message{ID: "not_translated", Other: "Fallback text"}
	assert.Equal(t, "Fallback text", Localize(missing, nil))

	require.NoError(t, Init("en"))
	assert.Equal(t, "Home", Text("screen_home", nil))
	assert.Equal(t, "Step 1 of 4", Text("onboarding_step", map[string]any{"Step": 1, "Steps": 4}))
}

func TestLocaleFilesCoverEveryMessage(t *testing.T) {
	for _, tag := range Supported {
		data, err := localeFS.ReadFile("locales/active." + tag.String() + ".toml")
		require.NoError(t, err)

		var messages map[string]string
		require.NoError(t, toml.Unmarshal(data, &messages))

		for id := range english {
			assert.NotEmpty(t, strings.TrimSpace(messages[id]), "%s missing from %s", id, tag)
		}
		assert.Len(t, messages, len(english), tag.String())
	}
}

func TestMessage_UnknownID(t *testing.T) {
	msg := Message("no_such_message")
	assert.Equal(t, "no_such_message", msg.Other)
}
