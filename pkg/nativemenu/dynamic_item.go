package nativemenu

import "fmt"

// DynamicItem computes the next value on demand instead of cycling a fixed
// list. Updater receives the current value and the direction pressed.
type DynamicItem[T any] struct {
	*SlidableItem

	current T
	value   *ScaledText

	Updater        func(current T, dir ChangeDirection) T
	Format         func(T) string
	OnValueChanged func(ValueChangedEvent[T])
}

func NewDynamicItem[T any](title, description string, style Style, initial T, updater func(T, ChangeDirection) T) *DynamicItem[T] {
	d := &DynamicItem[T]{
		SlidableItem: NewSlidableItem(title, description, style),
		current:      initial,
		value:        NewScaledText(PointF{}, "", style.TitleScale),
		Updater:      updater,
	}
	d.refreshText()
	return d
}

func (d *DynamicItem[T]) Value() T {
	return d.current
}

// SetValue replaces the value and reports it with DirectionUnknown.
func (d *DynamicItem[T]) SetValue(v T) {
	d.change(v, DirectionUnknown)
}

func (d *DynamicItem[T]) ValueElement() *ScaledText {
	return d.value
}

func (d *DynamicItem[T]) GoLeft() {
	if d.Updater == nil {
		return
	}
	d.change(d.Updater(d.current, DirectionLeft), DirectionLeft)
}

func (d *DynamicItem[T]) GoRight() {
	if d.Updater == nil {
		return
	}
	d.change(d.Updater(d.current, DirectionRight), DirectionRight)
}

func (d *DynamicItem[T]) change(next T, dir ChangeDirection) {
	old := d.current
	d.current = next
	d.refreshText()

	if d.OnValueChanged != nil {
		d.OnValueChanged(ValueChangedEvent[T]{Old: old, New: next, Direction: dir})
	}
}

func (d *DynamicItem[T]) refreshText() {
	if d.Format != nil {
		d.value.Text = d.Format(d.current)
		return
	}
	d.value.Text = fmt.Sprint(d.current)
}

func (d *DynamicItem[T]) Recalculate(pos PointF, size SizeF, selected bool) {
	d.refreshText()
	d.SlidableItem.Recalculate(pos, size, selected)
	d.placeValue(d.value, pos, selected)
}

func (d *DynamicItem[T]) Draw(r Renderer) {
	d.SlidableItem.Draw(r)
	d.value.Draw(r)
}
