package nativemenu

import (
	"testing"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseItemLayout(t *testing.T) {
	style := testStyle()
	item := NewItem("Graphics", "Video settings", style)

	item.Recalculate(PointF{X: 20, Y: 100}, SizeF{Width: 431, Height: 38}, false)
	assert.Equal(t, PointF{X: 26, Y: 103}, item.TitleElement().Position)
	assert.Equal(t, style.TitleColor, item.TitleElement().Color)

	item.SetBadge(constants.BadgeLockTexture)
	item.Recalculate(PointF{X: 20, Y: 100}, SizeF{Width: 431, Height: 38}, true)

	require.NotNil(t, item.Badge())
	assert.Equal(t, PointF{X: 22, Y: 104}, item.Badge().Position)
	assert.Equal(t, Square(30), item.Badge().Size)
	assert.Equal(t, PointF{X: 56, Y: 103}, item.TitleElement().Position)
	assert.Equal(t, style.SelectedTitleColor, item.TitleElement().Color)

	item.ClearBadge()
	assert.Nil(t, item.Badge())
}

func TestBaseItemTitleColor(t *testing.T) {
	style := testStyle()
	item := NewItem("Graphics", "", style)

	item.SetEnabled(false)
	item.Recalculate(PointF{}, SizeF{Width: 100, Height: 38}, true)
	assert.Equal(t, style.DisabledTitleColor, item.TitleElement().Color)
}

func TestBaseItemActivate(t *testing.T) {
	item := NewItem("Start", "", testStyle())

	calls := 0
	item.OnActivated = func() { calls++ }

	item.Activate()
	item.SetEnabled(false)
	item.Activate()

	assert.Equal(t, 1, calls)
}

func TestBaseItemDraw(t *testing.T) {
	item := NewItem("Start", "", testStyle())
	item.Recalculate(PointF{}, SizeF{Width: 100, Height: 38}, false)

	r := &recordingRenderer{}
	item.Draw(r)
	assert.Equal(t, []string{"Start"}, r.names())

	item.SetBadge(constants.BadgeStarTexture)
	r = &recordingRenderer{}
	item.Draw(r)
	assert.Equal(t, []string{"Start", constants.BadgeStarTexture}, r.names())
}

func TestSubMenuItem(t *testing.T) {
	style := testStyle()
	child := NewMenu("Audio", "", style)

	item := NewSubMenuItem("", "Sound options", style, child)
	assert.Equal(t, "Audio", item.Title())
	assert.Same(t, child, item.Menu())

	item.Recalculate(PointF{X: 20, Y: 100}, SizeF{Width: 431, Height: 38}, true)

	r := &recordingRenderer{}
	item.Draw(r)

	require.Len(t, r.calls, 2)
	indicator := r.calls[1]
	assert.Equal(t, ">>>", indicator.name)
	assert.Equal(t, constants.TextAlignRight, indicator.align)
	assert.Equal(t, PointF{X: 446, Y: 103}, indicator.pos)
}
