package preview

import (
	"io"

	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// eventInput turns SDL events into inputs. It ends the session with io.EOF
// when the window closes or the power button was pressed.
type eventInput struct {
	view      *view
	powerDown *atomic.Bool
}

// NextInput implements screens.InputSource.
func (e *eventInput) NextInput() (constants.Input, error) {
	for {
		if e.powerDown.Load() {
			return constants.InputNone, io.EOF
		}

		event := sdl.WaitEventTimeout(16)
		if event == nil {
			continue
		}

		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return constants.InputNone, io.EOF

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				e.view.redraw()
			}

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			if in, ok := InputForKey(ev.Keysym.Sym); ok {
				return in, nil
			}
		}
	}
}
