package nativemenu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicItem(t *testing.T) {
	counter := func(v int, dir ChangeDirection) int {
		if dir == DirectionLeft {
			return v - 1
		}
		return v + 1
	}
	item := NewDynamicItem("Players", "", testStyle(), 2, counter)
	item.Format = func(v int) string { return fmt.Sprintf("%d players", v) }

	var events []ValueChangedEvent[int]
	item.OnValueChanged = func(e ValueChangedEvent[int]) { events = append(events, e) }

	item.GoRight()
	item.GoRight()
	item.GoLeft()

	assert.Equal(t, 3, item.Value())
	assert.Equal(t, "3 players", item.ValueElement().Text)
	require.Len(t, events, 3)
	assert.Equal(t, ValueChangedEvent[int]{Old: 2, New: 3, Direction: DirectionRight}, events[0])
	assert.Equal(t, ValueChangedEvent[int]{Old: 4, New: 3, Direction: DirectionLeft}, events[2])

	item.SetValue(8)
	assert.Equal(t, DirectionUnknown, events[3].Direction)
	assert.Equal(t, 8, item.Value())
}

func TestDynamicItemWithoutUpdater(t *testing.T) {
	item := NewDynamicItem[string]("Name", "", testStyle(), "Ada", nil)

	item.GoLeft()
	item.GoRight()

	assert.Equal(t, "Ada", item.Value())
	assert.Equal(t, "Ada", item.ValueElement().Text)
}

func TestDynamicItemDraw(t *testing.T) {
	item := NewDynamicItem("Seed", "", testStyle(), 42, func(v int, _ ChangeDirection) int { return v })
	item.Recalculate(PointF{X: 10, Y: 10}, SizeF{Width: 200, Height: 38}, true)

	r := &recordingRenderer{}
	item.Draw(r)

	require.Len(t, r.calls, 4)
	value, ok := r.find("42")
	require.True(t, ok)
	assert.Equal(t, PointF{X: 175, Y: 13}, value.pos)
}
