package preview

import (
	"errors"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"go.uber.org/atomic"
)

// powerButton watches an evdev device for the power key and raises a flag
// the event loop polls.
type powerButton struct {
	device  *evdev.InputDevice
	pressed *atomic.Bool
	wg      sync.WaitGroup
}

// watchPowerButton starts reading path. It returns nil if the device cannot
// be opened; the preview then only quits from the window.
func watchPowerButton(path string, pressed *atomic.Bool) *powerButton {
	if path == "" {
		return nil
	}

	device, err := evdev.Open(path)
	if err != nil {
		internal.GetInternalLogger().Warn("Power button unavailable", "device", path, "error", err)
		return nil
	}

	pb := &powerButton{device: device, pressed: pressed}
	pb.wg.Add(1)
	go pb.run()
	return pb
}

func (pb *powerButton) run() {
	defer pb.wg.Done()

	for {
		event, err := pb.device.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				internal.GetInternalLogger().Debug("Power button reader stopped", "error", err)
			}
			return
		}
		if isPowerPress(event) {
			internal.GetInternalLogger().Info("Power button pressed")
			pb.pressed.Store(true)
		}
	}
}

func isPowerPress(event *evdev.InputEvent) bool {
	return event.Type == evdev.EV_KEY && event.Code == evdev.KEY_POWER && event.Value == 1
}

// close stops the reader and waits for it to exit.
func (pb *powerButton) close() {
	if pb == nil {
		return
	}
	_ = pb.device.Close()
	pb.wg.Wait()
}
