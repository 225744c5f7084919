package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInput(t *testing.T) {
	for _, in := range Inputs {
		got, ok := ParseInput(in.String())
		assert.True(t, ok, in.GetName())
		assert.Equal(t, in, got)
	}

	got, ok := ParseInput(" CONFIRM ")
	assert.True(t, ok)
	assert.Equal(t, InputConfirm, got)

	_, ok = ParseInput("jump")
	assert.False(t, ok)
	_, ok = ParseInput("none")
	assert.False(t, ok)
}

func TestEnvInt32(t *testing.T) {
	t.Setenv(WindowWidthEnvVar, "640")
	assert.Equal(t, int32(640), EnvInt32(WindowWidthEnvVar, DefaultWindowWidth))

	t.Setenv(WindowWidthEnvVar, "wide")
	assert.Equal(t, DefaultWindowWidth, EnvInt32(WindowWidthEnvVar, DefaultWindowWidth))

	t.Setenv(WindowWidthEnvVar, "-5")
	assert.Equal(t, DefaultWindowWidth, EnvInt32(WindowWidthEnvVar, DefaultWindowWidth))
}

func TestIsDevMode(t *testing.T) {
	t.Setenv(EnvironmentEnvVar, Development)
	assert.True(t, IsDevMode())

	t.Setenv(EnvironmentEnvVar, "PROD")
	assert.False(t, IsDevMode())
}
