package nativemenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepperItemClamps(t *testing.T) {
	item := NewStepperItem("Volume", "", testStyle(), 0, 100, 10, 95)
	assert.Equal(t, float64(100), item.Value(), "initial value snaps to the step grid")

	var events []ValueChangedEvent[float64]
	item.OnValueChanged = func(e ValueChangedEvent[float64]) { events = append(events, e) }

	item.GoRight()
	assert.Equal(t, float64(100), item.Value())
	assert.Empty(t, events, "no change at the upper bound")

	item.GoLeft()
	assert.Equal(t, float64(90), item.Value())
	require.Len(t, events, 1)
	assert.Equal(t, ValueChangedEvent[float64]{Old: 100, New: 90, Direction: DirectionLeft}, events[0])

	item.SetValue(-20)
	assert.Equal(t, float64(0), item.Value())
	item.GoLeft()
	assert.Equal(t, float64(0), item.Value())
}

func TestStepperItemWrap(t *testing.T) {
	item := NewStepperItem("Lives", "", testStyle(), 1, 5, 1, 5)
	item.Wrap = true

	item.GoRight()
	assert.Equal(t, float64(1), item.Value())

	item.GoLeft()
	assert.Equal(t, float64(5), item.Value())
}

func TestStepperItemNormalisesArguments(t *testing.T) {
	item := NewStepperItem("Gamma", "", testStyle(), 2, 0, 0, 1)

	assert.Equal(t, float64(0), item.Min)
	assert.Equal(t, float64(2), item.Max)
	assert.Equal(t, float64(1), item.Step)
}

func TestStepperItemText(t *testing.T) {
	item := NewStepperItem("Brightness", "", testStyle(), 0, 1, 0.25, 0.5)
	item.Precision = 2
	item.Suffix = "x"

	item.GoRight()
	assert.Equal(t, 0.75, item.Value())
	assert.Equal(t, "0.75x", item.ValueElement().Text)
}
