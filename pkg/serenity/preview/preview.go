// Package preview is a desktop host for the app screens. It opens an SDL
// window, drives the screens with the keyboard through the router, and draws
// each screen's resolved assets from an asset directory.
package preview

import (
	"io/fs"
	"os"

	"github.com/serenity-wellness/serenity/pkg/serenity"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"go.uber.org/atomic"
)

// Options configures Run.
type Options struct {
	Title       string // Window title shown before the first screen mounts
	Width       int32  // Window width; 0 reads WINDOW_WIDTH or uses the default
	Height      int32  // Window height; 0 reads WINDOW_HEIGHT or uses the default
	Assets      fs.FS  // Asset tree handles are read from; nil draws placeholders
	PowerDevice string // evdev device of the power button; empty reads POWER_DEVICE
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Serenity"
	}
	if o.Width <= 0 {
		o.Width = constants.EnvInt32(constants.WindowWidthEnvVar, constants.DefaultWindowWidth)
	}
	if o.Height <= 0 {
		o.Height = constants.EnvInt32(constants.WindowHeightEnvVar, constants.DefaultWindowHeight)
	}
	if o.PowerDevice == "" {
		o.PowerDevice = os.Getenv(constants.PowerDeviceEnvVar)
	}
	return o
}

// Run opens the preview window and runs a session from start until the
// navigation stack empties, the window is closed or the power button is
// pressed.
func Run(app *serenity.App, start router.Request, opts Options) error {
	opts = opts.withDefaults()

	if err := initSDL(); err != nil {
		return serenity.NewInfrastructureError("init_sdl", err)
	}
	defer quitSDL()

	win, err := openWindow(opts.Title, opts.Width, opts.Height)
	if err != nil {
		return serenity.NewInfrastructureError("open_window", err)
	}
	defer win.close()

	v := newView(win, opts.Assets, app.Appearance)
	defer v.close()

	powerDown := atomic.NewBool(false)
	if !constants.IsDevMode() {
		pb := watchPowerButton(opts.PowerDevice, powerDown)
		defer pb.close()
	}

	stack, err := app.Walk(start, &eventInput{view: v, powerDown: powerDown}, v)
	internal.GetLogger().Info("Preview closed", "stack", stack.Screens(), "power", powerDown.Load())
	return err
}
