package nativemenu

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// SDLRenderer draws menus with an SDL renderer. Sprites are rasterised from
// the embedded SVG atlas on first use and cached per pixel size.
type SDLRenderer struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	cache    *internal.TextureCache
	missing  map[string]bool
}

func NewSDLRenderer(renderer *sdl.Renderer, font *ttf.Font) *SDLRenderer {
	return &SDLRenderer{
		renderer: renderer,
		font:     font,
		cache:    internal.NewTextureCache(),
		missing:  make(map[string]bool),
	}
}

// Destroy releases cached sprite textures.
func (s *SDLRenderer) Destroy() {
	s.cache.Destroy()
}

func (s *SDLRenderer) DrawTexture(dictionary, texture string, pos PointF, size SizeF, color sdl.Color) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	w := int32(math.Ceil(float64(size.Width)))
	h := int32(math.Ceil(float64(size.Height)))
	key := internal.SpriteKey(dictionary, texture, w, h)
	if s.missing[key] {
		return
	}

	tex, err := s.cache.GetOrCreate(key, func() (*sdl.Texture, error) {
		return s.spriteTexture(dictionary, texture, w, h)
	})
	if err != nil {
		// Logged once per sprite and size.
		s.missing[key] = true
		internal.GetInternalLogger().Error("Failed to load sprite", "error", NewInfrastructureError("sprite", err))
		return
	}

	tex.SetColorMod(color.R, color.G, color.B)
	tex.SetAlphaMod(color.A)
	s.renderer.CopyF(tex, nil, &sdl.FRect{X: pos.X, Y: pos.Y, W: size.Width, H: size.Height})
}

func (s *SDLRenderer) spriteTexture(dictionary, texture string, w, h int32) (*sdl.Texture, error) {
	img, err := internal.RasterizeSprite(dictionary, texture, int(w), int(h))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]), w, h, 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := s.renderer.CreateTextureFromSurface(surface)
	// The surface borrows img's pixels until the texture is uploaded.
	runtime.KeepAlive(img)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

func (s *SDLRenderer) DrawText(text string, pos PointF, scale float32, color sdl.Color, align constants.TextAlign) {
	if text == "" || s.font == nil {
		return
	}

	surface, err := s.font.RenderUTF8Blended(text, color)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to render text", "text", text, "error", err)
		return
	}
	defer surface.Free()

	tex, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetInternalLogger().Debug("Failed to upload text", "text", text, "error", err)
		return
	}
	defer tex.Destroy()
	tex.SetAlphaMod(color.A)

	factor := textScaleFactor(scale)
	w := float32(surface.W) * factor
	h := float32(surface.H) * factor

	x := pos.X
	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}

	s.renderer.CopyF(tex, nil, &sdl.FRect{X: x, Y: pos.Y, W: w, H: h})
}

func (s *SDLRenderer) FillRect(pos PointF, size SizeF, color sdl.Color) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	s.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	s.renderer.FillRectF(&sdl.FRect{X: pos.X, Y: pos.Y, W: size.Width, H: size.Height})
}

func (s *SDLRenderer) MeasureText(text string, scale float32) float32 {
	return fontMeasurer{font: s.font}.MeasureText(text, scale)
}

// fontMeasurer measures with SDL_ttf at the loaded font size.
type fontMeasurer struct {
	font *ttf.Font
}

func (f fontMeasurer) MeasureText(text string, scale float32) float32 {
	if text == "" || f.font == nil {
		return 0
	}
	w, _, err := f.font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return float32(w) * textScaleFactor(scale)
}

// textScaleFactor maps a text scale to a multiple of the loaded font size;
// constants.TitleScale draws at the font's native size.
func textScaleFactor(scale float32) float32 {
	if scale <= 0 {
		return 1
	}
	return scale / constants.TitleScale
}

func defaultMeasurer() TextMeasurer {
	if internal.Fonts.Primary != nil {
		return fontMeasurer{font: internal.Fonts.Primary}
	}
	return nil
}
