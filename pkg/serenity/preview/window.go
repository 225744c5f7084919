package preview

import (
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// window wraps the SDL window and renderer.
type window struct {
	window          *sdl.Window
	renderer        *sdl.Renderer
	width, height   int32
	hasVSync        bool
	lastPresentTime uint64
}

func initSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl_image init: %w", err)
	}
	return nil
}

func quitSDL() {
	img.Quit()
	sdl.Quit()
}

func openWindow(title string, width, height int32) (*window, error) {
	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	win, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	_ = renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &window{
		window:   win,
		renderer: renderer,
		width:    width,
		height:   height,
		hasVSync: vsync,
	}, nil
}

// present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *window) present() {
	w.renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *window) close() {
	_ = w.renderer.Destroy()
	_ = w.window.Destroy()
}
