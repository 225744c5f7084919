package preview

import (
	"testing"

	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/stretchr/testify/assert"
)

func TestOptions_WithDefaults(t *testing.T) {
	t.Setenv(constants.WindowWidthEnvVar, "")
	t.Setenv(constants.WindowHeightEnvVar, "600")
	t.Setenv(constants.PowerDeviceEnvVar, "/dev/input/event1")

	opts := Options{}.withDefaults()
	assert.Equal(t, "Serenity", opts.Title)
	assert.Equal(t, constants.DefaultWindowWidth, opts.Width)
	assert.Equal(t, int32(600), opts.Height)
	assert.Equal(t, "/dev/input/event1", opts.PowerDevice)

	opts = Options{Title: "Demo", Width: 320, Height: 240, PowerDevice: "/dev/input/event2"}.withDefaults()
	assert.Equal(t, "Demo", opts.Title)
	assert.Equal(t, int32(320), opts.Width)
	assert.Equal(t, "/dev/input/event2", opts.PowerDevice)
}
