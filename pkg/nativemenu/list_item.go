package nativemenu

import (
	"fmt"
	"slices"
)

// ListItem cycles through a fixed set of values with wrap-around.
type ListItem[T any] struct {
	*SlidableItem

	items []T
	index int
	value *ScaledText

	// Format renders a value for display. Defaults to fmt.Sprint.
	Format func(T) string
	// OnItemChanged fires after the selected value changes.
	OnItemChanged func(ItemChangedEvent[T])
}

// NewListItem creates a list row selecting the first of items.
func NewListItem[T any](title, description string, style Style, items ...T) *ListItem[T] {
	l := &ListItem[T]{
		SlidableItem: NewSlidableItem(title, description, style),
		items:        slices.Clone(items),
		index:        -1,
		value:        NewScaledText(PointF{}, "", style.TitleScale),
	}
	if len(l.items) > 0 {
		l.index = 0
	}
	l.refreshText()
	return l
}

// Items returns a copy of the values.
func (l *ListItem[T]) Items() []T {
	return slices.Clone(l.items)
}

// SetItems replaces the values and selects the first one.
func (l *ListItem[T]) SetItems(items []T) {
	l.items = slices.Clone(items)
	l.index = -1
	if len(l.items) > 0 {
		l.index = 0
	}
	l.refreshText()
}

// Add appends values. Adding to an empty list selects the first value.
func (l *ListItem[T]) Add(items ...T) {
	l.items = append(l.items, items...)
	if l.index < 0 && len(l.items) > 0 {
		l.index = 0
	}
	l.refreshText()
}

// Remove deletes the value at index, keeping the selection on the same value
// where possible.
func (l *ListItem[T]) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("remove %d of %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}

	l.items = slices.Delete(l.items, index, index+1)

	switch {
	case len(l.items) == 0:
		l.index = -1
	case index < l.index:
		l.index--
	case l.index >= len(l.items):
		l.index = len(l.items) - 1
	}

	l.refreshText()
	return nil
}

// Len returns the number of values.
func (l *ListItem[T]) Len() int {
	return len(l.items)
}

// SelectedIndex returns the selected position, or -1 when empty.
func (l *ListItem[T]) SelectedIndex() int {
	return l.index
}

// SetSelectedIndex selects a value by position.
func (l *ListItem[T]) SetSelectedIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("select %d of %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	if index != l.index {
		l.move(index, DirectionUnknown)
	}
	return nil
}

// SelectedItem returns the selected value; ok is false when empty.
func (l *ListItem[T]) SelectedItem() (T, bool) {
	if l.index < 0 {
		var zero T
		return zero, false
	}
	return l.items[l.index], true
}

// ValueElement exposes the value text element.
func (l *ListItem[T]) ValueElement() *ScaledText {
	return l.value
}

func (l *ListItem[T]) GoLeft() {
	if len(l.items) == 0 {
		return
	}
	next := l.index - 1
	if next < 0 {
		next = len(l.items) - 1
	}
	l.move(next, DirectionLeft)
}

func (l *ListItem[T]) GoRight() {
	if len(l.items) == 0 {
		return
	}
	next := l.index + 1
	if next >= len(l.items) {
		next = 0
	}
	l.move(next, DirectionRight)
}

func (l *ListItem[T]) move(index int, dir ChangeDirection) {
	l.index = index
	l.refreshText()

	if l.OnItemChanged != nil {
		l.OnItemChanged(ItemChangedEvent[T]{
			Object:    l.items[index],
			Index:     index,
			Direction: dir,
		})
	}
}

func (l *ListItem[T]) refreshText() {
	if l.index < 0 {
		l.value.Text = ""
		return
	}
	if l.Format != nil {
		l.value.Text = l.Format(l.items[l.index])
		return
	}
	l.value.Text = fmt.Sprint(l.items[l.index])
}

// Recalculate lays out the arrows and the value between them.
func (l *ListItem[T]) Recalculate(pos PointF, size SizeF, selected bool) {
	l.refreshText()
	l.SlidableItem.Recalculate(pos, size, selected)
	l.placeValue(l.value, pos, selected)
}

// Draw issues the slidable row followed by the value text.
func (l *ListItem[T]) Draw(r Renderer) {
	l.SlidableItem.Draw(r)
	l.value.Draw(r)
}
