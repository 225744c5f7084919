package preview

import (
	"bytes"
	"fmt"
	"image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/screens"
	"github.com/serenity-wellness/serenity/pkg/serenity/theme"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

type palette struct {
	background, placeholder, selected sdl.Color
}

var (
	lightPalette = palette{
		background:  sdl.Color{R: 246, G: 243, B: 238, A: 255},
		placeholder: sdl.Color{R: 214, G: 208, B: 198, A: 255},
		selected:    sdl.Color{R: 92, G: 124, B: 250, A: 255},
	}
	darkPalette = palette{
		background:  sdl.Color{R: 24, G: 26, B: 34, A: 255},
		placeholder: sdl.Color{R: 58, G: 62, B: 76, A: 255},
		selected:    sdl.Color{R: 140, G: 164, B: 255, A: 255},
	}
)

// view draws the mounted screen: its display asset centred above a strip of
// tabs. Titles go to the window title bar.
type view struct {
	win        *window
	assets     fs.FS
	appearance *theme.Appearance
	textures   *TextureCache[*sdl.Texture]
	missing    map[catalog.AssetHandle]bool
	current    screens.Screen
}

func newView(win *window, assets fs.FS, appearance *theme.Appearance) *view {
	return &view{
		win:        win,
		assets:     assets,
		appearance: appearance,
		textures:   NewTextureCache[*sdl.Texture](),
		missing:    make(map[catalog.AssetHandle]bool),
	}
}

// Show implements screens.View.
func (v *view) Show(s screens.Screen) {
	v.current = s
	v.draw()
}

// redraw repaints the current screen, for window exposure and resizes.
func (v *view) redraw() {
	if v.current != nil {
		v.draw()
	}
}

func (v *view) draw() {
	s := v.current
	if v.textures.Sync(v.appearance.Generation()) {
		v.missing = make(map[catalog.AssetHandle]bool)
	}

	title := s.Title()
	if caption := s.Caption(); caption != "" {
		title = fmt.Sprintf("%s · %s", title, caption)
	}
	v.win.window.SetTitle(title)

	colors := lightPalette
	if v.appearance.IsDark() {
		colors = darkPalette
	}

	r := v.win.renderer
	setColor(r, colors.background)
	_ = r.Clear()

	stripTop := v.win.height - constants.DefaultTabStripHeight
	margin := v.win.width / 10
	v.drawAsset(s.Display(), sdl.Rect{X: margin, Y: margin, W: v.win.width - 2*margin, H: stripTop - 2*margin}, colors)

	tabs := s.Tabs()
	if len(tabs) > 0 {
		slot := v.win.width / int32(len(tabs))
		size := constants.DefaultTabIconSize
		for i, tab := range tabs {
			dst := sdl.Rect{
				X: int32(i)*slot + (slot-size)/2,
				Y: stripTop + (constants.DefaultTabStripHeight-size)/2,
				W: size,
				H: size,
			}
			v.drawAsset(tab.Handle, dst, colors)
			if tab.Selected {
				setColor(r, colors.selected)
				_ = r.FillRect(&sdl.Rect{X: dst.X, Y: dst.Y + dst.H + 4, W: dst.W, H: 4})
			}
		}
	}

	v.win.present()
}

func (v *view) drawAsset(handle catalog.AssetHandle, dst sdl.Rect, colors palette) {
	texture, ok := v.texture(handle, dst)
	if !ok {
		setColor(v.win.renderer, colors.placeholder)
		_ = v.win.renderer.FillRect(&dst)
		return
	}
	_ = v.win.renderer.Copy(texture, nil, &dst)
}

// texture loads handle from the asset tree, rasterising SVGs at the size of
// dst. Assets that fail to load are remembered and drawn as placeholders.
func (v *view) texture(handle catalog.AssetHandle, dst sdl.Rect) (*sdl.Texture, bool) {
	if t, ok := v.textures.Get(handle); ok {
		return t, true
	}
	if v.assets == nil || v.missing[handle] {
		return nil, false
	}

	t, err := v.load(handle, dst)
	if err != nil {
		internal.GetInternalLogger().Warn("Asset unavailable", "handle", string(handle), "error", err)
		v.missing[handle] = true
		return nil, false
	}
	v.textures.Set(handle, t)
	return t, true
}

func (v *view) load(handle catalog.AssetHandle, dst sdl.Rect) (*sdl.Texture, error) {
	data, err := fs.ReadFile(v.assets, string(handle))
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(path.Ext(string(handle)), ".svg") {
		raster, err := internal.RasterizeSVG(data, int(dst.W), int(dst.H))
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, raster); err != nil {
			return nil, err
		}
		data = buf.Bytes()
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadTextureRW(v.win.renderer, rw, true)
}

func (v *view) close() {
	v.textures.Destroy()
}

func setColor(r *sdl.Renderer, c sdl.Color) {
	_ = r.SetDrawColor(c.R, c.G, c.B, c.A)
}
