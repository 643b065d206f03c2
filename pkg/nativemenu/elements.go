package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// ScaledTexture is a sprite from a dictionary drawn at a position and size.
type ScaledTexture struct {
	Position   PointF
	Size       SizeF
	Dictionary string
	Texture    string
	Color      sdl.Color
}

// NewScaledTexture creates a white, untinted sprite element.
func NewScaledTexture(pos PointF, size SizeF, dictionary, texture string) *ScaledTexture {
	return &ScaledTexture{
		Position:   pos,
		Size:       size,
		Dictionary: dictionary,
		Texture:    texture,
		Color:      sdl.Color{R: 255, G: 255, B: 255, A: 255},
	}
}

// Draw issues exactly one DrawTexture call, even when the size is empty.
func (t *ScaledTexture) Draw(r Renderer) {
	r.DrawTexture(t.Dictionary, t.Texture, t.Position, t.Size, t.Color)
}

// ScaledText is a line of text.
type ScaledText struct {
	Position  PointF
	Text      string
	Scale     float32
	Color     sdl.Color
	Alignment constants.TextAlign
}

// NewScaledText creates a left-aligned text element.
func NewScaledText(pos PointF, text string, scale float32) *ScaledText {
	return &ScaledText{
		Position:  pos,
		Text:      text,
		Scale:     scale,
		Color:     sdl.Color{R: 255, G: 255, B: 255, A: 255},
		Alignment: constants.TextAlignLeft,
	}
}

func (t *ScaledText) Draw(r Renderer) {
	r.DrawText(t.Text, t.Position, t.Scale, t.Color, t.Alignment)
}

// Width measures the text with m.
func (t *ScaledText) Width(m TextMeasurer) float32 {
	if m == nil {
		return 0
	}
	return m.MeasureText(t.Text, t.Scale)
}
