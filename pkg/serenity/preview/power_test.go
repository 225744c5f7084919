package preview

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
)

func TestIsPowerPress(t *testing.T) {
	assert.True(t, isPowerPress(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_POWER, Value: 1}))
	assert.False(t, isPowerPress(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_POWER, Value: 0}))
	assert.False(t, isPowerPress(&evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_ENTER, Value: 1}))
	assert.False(t, isPowerPress(&evdev.InputEvent{Type: evdev.EV_SYN, Code: evdev.KEY_POWER, Value: 1}))
}

func TestWatchPowerButton_MissingDevice(t *testing.T) {
	pressed := atomic.NewBool(false)

	assert.Nil(t, watchPowerButton("", pressed))
	assert.Nil(t, watchPowerButton("/nonexistent/event9", pressed))

	var pb *powerButton
	pb.close()
	assert.False(t, pressed.Load())
}
