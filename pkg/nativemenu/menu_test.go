package nativemenu

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestMenu(items ...Item) *Menu {
	m := NewMenu("Options", "Main", testStyle())
	m.InputDelay = 0
	m.Add(items...)
	return m
}

func TestMenuSelection(t *testing.T) {
	style := testStyle()
	a, b, c := NewItem("A", "", style), NewItem("B", "", style), NewItem("C", "", style)
	m := newTestMenu(a, b, c)

	assert.Equal(t, 0, m.SelectedIndex())
	assert.Same(t, a, m.SelectedItem())

	var moved []int
	m.OnSelectionChanged = func(index int, _ Item) { moved = append(moved, index) }

	assert.Equal(t, MenuActionMoved, m.GoUp())
	assert.Equal(t, 2, m.SelectedIndex(), "up from the first row wraps")
	assert.Equal(t, MenuActionMoved, m.GoDown())
	assert.Equal(t, 0, m.SelectedIndex(), "down from the last row wraps")
	assert.Equal(t, []int{2, 0}, moved)

	require.NoError(t, m.SetSelectedIndex(1))
	assert.Same(t, b, m.SelectedItem())
	assert.ErrorIs(t, m.SetSelectedIndex(3), ErrIndexOutOfRange)
}

func TestMenuRemove(t *testing.T) {
	style := testStyle()
	a, b, c := NewItem("A", "", style), NewItem("B", "", style), NewItem("C", "", style)
	m := newTestMenu(a, b, c)
	require.NoError(t, m.SetSelectedIndex(2))

	assert.True(t, m.Remove(a))
	assert.False(t, m.Remove(a))
	assert.Same(t, c, m.SelectedItem())

	require.NoError(t, m.RemoveAt(1))
	assert.Same(t, b, m.SelectedItem())
	assert.ErrorIs(t, m.RemoveAt(5), ErrIndexOutOfRange)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, -1, m.SelectedIndex())
	assert.Nil(t, m.SelectedItem())
}

func TestMenuCounter(t *testing.T) {
	m := newTestMenu()
	r := &recordingRenderer{}
	m.Draw(r)
	_, ok := r.find("No items")
	assert.True(t, ok)

	style := testStyle()
	m.Add(NewItem("A", "", style), NewItem("B", "", style))
	m.GoDown()

	r = &recordingRenderer{}
	m.Draw(r)
	counter, ok := r.find("2 / 2")
	require.True(t, ok)
	assert.Equal(t, constants.TextAlignRight, counter.align)
}

func TestMenuSlide(t *testing.T) {
	style := testStyle()
	list := NewListItem("Difficulty", "", style, "Easy", "Hard")
	plain := NewItem("Start", "", style)
	m := newTestMenu(list, plain)

	assert.Equal(t, MenuActionChanged, m.HandleButton(constants.VirtualButtonRight, true))
	v, _ := list.SelectedItem()
	assert.Equal(t, "Hard", v)
	assert.Equal(t, "Hard", list.ValueElement().Text)
	m.HandleButton(constants.VirtualButtonRight, false)

	list.SetEnabled(false)
	assert.Equal(t, MenuActionNone, m.GoLeft())
	v, _ = list.SelectedItem()
	assert.Equal(t, "Hard", v, "disabled rows ignore left/right")

	m.GoDown()
	assert.Equal(t, MenuActionNone, m.GoRight(), "plain rows ignore left/right")
}

func TestMenuActivate(t *testing.T) {
	style := testStyle()
	start := NewItem("Start", "", style)
	sub := NewSubMenuItem("", "", style, NewMenu("Audio", "", style))
	m := newTestMenu(start, sub)

	activated := 0
	start.OnActivated = func() { activated++ }
	var reported Item
	m.OnItemActivated = func(_ int, item Item) { reported = item }

	assert.Equal(t, MenuActionActivated, m.HandleButton(constants.VirtualButtonA, true))
	assert.Equal(t, 1, activated)
	assert.Same(t, start, reported)

	m.GoDown()
	assert.Equal(t, MenuActionOpenSubMenu, m.Select())

	sub.SetEnabled(false)
	assert.Equal(t, MenuActionNone, m.Select())

	assert.Equal(t, MenuActionBack, m.HandleButton(constants.VirtualButtonB, true))
	assert.Equal(t, MenuActionNone, m.HandleButton(constants.VirtualButtonStart, true))
}

func TestMenuEmptyIgnoresInput(t *testing.T) {
	m := newTestMenu()

	assert.Equal(t, MenuActionNone, m.GoDown())
	assert.Equal(t, MenuActionNone, m.GoRight())
	assert.Equal(t, MenuActionNone, m.Select())
}

func TestMenuInputDelay(t *testing.T) {
	clock := newFakeClock()
	style := testStyle()
	m := newTestMenu(NewItem("A", "", style), NewItem("B", "", style), NewItem("C", "", style))
	m.InputDelay = 20 * time.Millisecond
	m.SetClock(clock.Now)

	assert.Equal(t, MenuActionMoved, m.HandleButton(constants.VirtualButtonDown, true))
	m.HandleButton(constants.VirtualButtonDown, false)

	clock.Advance(5 * time.Millisecond)
	assert.Equal(t, MenuActionNone, m.HandleButton(constants.VirtualButtonDown, true))
	assert.Equal(t, 1, m.SelectedIndex())

	clock.Advance(20 * time.Millisecond)
	assert.Equal(t, MenuActionMoved, m.HandleButton(constants.VirtualButtonDown, true))
	assert.Equal(t, 2, m.SelectedIndex())
}

func TestMenuKeyRepeat(t *testing.T) {
	clock := newFakeClock()
	m := newTestMenu(NewStepperItem("Volume", "", testStyle(), 0, 100, 1, 50))
	m.SetClock(clock.Now)
	stepper := m.SelectedItem().(*StepperItem)

	require.Equal(t, MenuActionChanged, m.HandleButton(constants.VirtualButtonRight, true))
	assert.Equal(t, float64(51), stepper.Value())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, MenuActionNone, m.Update())

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, MenuActionChanged, m.Update())
	assert.Equal(t, float64(52), stepper.Value())

	clock.Advance(constants.DefaultRepeatInterval)
	assert.Equal(t, MenuActionChanged, m.Update())
	assert.Equal(t, float64(53), stepper.Value())

	m.HandleButton(constants.VirtualButtonRight, false)
	clock.Advance(time.Second)
	assert.Equal(t, MenuActionNone, m.Update())
	assert.Equal(t, float64(53), stepper.Value())
}

func TestMenuScrolling(t *testing.T) {
	style := testStyle()
	m := newTestMenu()
	m.MaxVisibleItems = 3
	for _, title := range []string{"1", "2", "3", "4", "5"} {
		m.Add(NewItem(title, "", style))
	}

	start, end := m.VisibleRange()
	assert.Equal(t, [2]int{0, 3}, [2]int{start, end})

	m.GoUp()
	start, end = m.VisibleRange()
	assert.Equal(t, [2]int{2, 5}, [2]int{start, end})

	r := &recordingRenderer{}
	m.Draw(r)
	_, drawn := r.find("1")
	assert.False(t, drawn, "rows outside the window are not drawn")
	_, drawn = r.find("5")
	assert.True(t, drawn)
}

func TestMenuLayout(t *testing.T) {
	style := testStyle()
	first := NewItem("A", "", style)
	second := NewListItem("B", "Pick one", style, "x")
	m := newTestMenu(first, second)

	// Rows start below the header and the subtitle band.
	assert.Equal(t, PointF{X: 26, Y: 141}, first.TitleElement().Position)
	assert.Equal(t, PointF{X: 26, Y: 179}, second.TitleElement().Position)

	m.GoDown()
	assert.Equal(t, PointF{X: 416, Y: 180}, second.ArrowRight().Position)
	assert.Equal(t, Square(30), second.ArrowRight().Size)

	r := &recordingRenderer{}
	m.Draw(r)

	require.GreaterOrEqual(t, len(r.calls), 4)
	assert.Equal(t, "rect", r.calls[0].kind)
	assert.Equal(t, style.HeaderColor, r.calls[0].color)
	assert.Equal(t, "Options", r.calls[1].name)

	description, ok := r.find("Pick one")
	require.True(t, ok)
	assert.Equal(t, PointF{X: 28, Y: 230}, description.pos)

	highlightFound := false
	for _, c := range r.calls {
		if c.kind == "rect" && c.color == style.HighlightColor && c.pos == (PointF{X: 20, Y: 176}) {
			highlightFound = true
		}
	}
	assert.True(t, highlightFound, "selected row is highlighted")
}

func TestMenuArrowsAlwaysVisible(t *testing.T) {
	style := testStyle()
	plain := NewItem("Start", "", style)
	list := NewListItem("Difficulty", "", style, "Easy", "Hard")
	m := newTestMenu(plain, list)

	assert.Equal(t, SizeF{}, list.ArrowRight().Size)

	m.SetArrowsAlwaysVisible(true)
	assert.True(t, m.ArrowsAlwaysVisible())
	assert.True(t, list.ArrowsAlwaysVisible())
	assert.Equal(t, Square(30), list.ArrowRight().Size)

	later := NewStepperItem("Volume", "", style, 0, 10, 1, 5)
	m.Add(later)
	assert.True(t, later.ArrowsAlwaysVisible())
	assert.Equal(t, Square(30), later.ArrowLeft().Size)

	m.SetArrowsAlwaysVisible(false)
	assert.Equal(t, SizeF{}, list.ArrowRight().Size)
}

func TestMenuSlideHint(t *testing.T) {
	style := testStyle()
	style.Language = "en"
	m := NewMenu("Options", "", style)
	m.Add(NewListItem("Difficulty", "", style, "Easy", "Hard"))

	r := &recordingRenderer{}
	m.Draw(r)
	_, ok := r.find("Left / Right to change")
	assert.False(t, ok)

	m.ShowSlideHint = true
	m.Recalculate()
	r = &recordingRenderer{}
	m.Draw(r)
	_, ok = r.find("Left / Right to change")
	assert.True(t, ok)
}
