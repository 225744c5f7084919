package preview

import (
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// keymap maps keyboard keys to inputs. Arrows move, enter confirms, escape
// and backspace go back, space toggles.
var keymap = map[sdl.Keycode]constants.Input{
	sdl.K_UP:        constants.InputNext,
	sdl.K_DOWN:      constants.InputNext,
	sdl.K_TAB:       constants.InputNext,
	sdl.K_LEFT:      constants.InputLeft,
	sdl.K_RIGHT:     constants.InputRight,
	sdl.K_RETURN:    constants.InputConfirm,
	sdl.K_KP_ENTER:  constants.InputConfirm,
	sdl.K_ESCAPE:    constants.InputBack,
	sdl.K_BACKSPACE: constants.InputBack,
	sdl.K_SPACE:     constants.InputToggle,
}

// InputForKey returns the input bound to key.
func InputForKey(key sdl.Keycode) (constants.Input, bool) {
	in, ok := keymap[key]
	return in, ok
}
