package nativemenu

import (
	"unicode/utf8"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Renderer receives the draw calls issued by elements, items and menus.
// SDLRenderer is the production implementation.
type Renderer interface {
	DrawTexture(dictionary, texture string, pos PointF, size SizeF, color sdl.Color)
	DrawText(text string, pos PointF, scale float32, color sdl.Color, align constants.TextAlign)
	FillRect(pos PointF, size SizeF, color sdl.Color)
}

// TextMeasurer reports the rendered width of a string at a text scale.
type TextMeasurer interface {
	MeasureText(text string, scale float32) float32
}

// FixedWidthMeasurer approximates every rune as the same width.
// Used when no font is loaded.
type FixedWidthMeasurer struct {
	RuneWidth float32 // Width of one rune at scale 1
}

func (m FixedWidthMeasurer) MeasureText(text string, scale float32) float32 {
	return float32(utf8.RuneCountInString(text)) * m.RuneWidth * scale
}
