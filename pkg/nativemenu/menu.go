package nativemenu

import (
	"fmt"
	"slices"
	"time"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
)

// Menu is a vertical list of items under a header and a subtitle band.
// It owns the selection, lays rows out and forwards left/right input to
// slidable rows.
type Menu struct {
	items        []Item
	index        int
	visibleStart int

	Position        PointF
	Width           float32
	HeaderHeight    float32
	SubtitleHeight  float32
	ItemHeight      float32
	MaxVisibleItems int
	InputDelay      time.Duration // Debounce between accepted presses
	ShowSlideHint   bool          // Describe enabled slidable rows that have no description

	// OnSelectionChanged fires after up/down moves the selection.
	OnSelectionChanged func(index int, item Item)
	// OnItemActivated fires after an enabled item is activated.
	OnItemActivated func(index int, item Item)

	style               Style
	localizer           *internal.Localizer
	directional         internal.DirectionalInput
	arrowsAlwaysVisible bool
	lastInputTime       time.Time
	now                 func() time.Time

	header      rectElement
	background  rectElement
	highlight   rectElement
	descBox     rectElement
	title       *ScaledText
	subtitle    *ScaledText
	counter     *ScaledText
	description *ScaledText
}

type rectElement struct {
	pos     PointF
	size    SizeF
	visible bool
}

// NewMenu creates an empty menu at the top-left corner.
func NewMenu(title, subtitle string, style Style) *Menu {
	titleText := NewScaledText(PointF{}, title, style.TitleScale*2)
	titleText.Alignment = constants.TextAlignCenter
	titleText.Color = style.HeaderTextColor

	subtitleText := NewScaledText(PointF{}, subtitle, style.TitleScale)
	subtitleText.Color = style.TitleColor

	counter := NewScaledText(PointF{}, "", style.TitleScale)
	counter.Alignment = constants.TextAlignRight
	counter.Color = style.TitleColor

	description := NewScaledText(PointF{}, "", style.TitleScale)
	description.Color = style.DescriptionColor

	m := &Menu{
		index:           -1,
		Position:        PointF{X: 20, Y: 20},
		Width:           constants.DefaultMenuWidth,
		HeaderHeight:    constants.DefaultHeaderHeight,
		SubtitleHeight:  constants.DefaultSubtitleHeight,
		ItemHeight:      constants.DefaultItemHeight,
		MaxVisibleItems: constants.DefaultMaxVisibleItems,
		InputDelay:      constants.DefaultInputDelay,
		style:           style,
		localizer:       internal.NewLocalizer(style.Language),
		directional:     internal.NewDirectionalInput(),
		now:             time.Now,
		title:           titleText,
		subtitle:        subtitleText,
		counter:         counter,
		description:     description,
	}
	m.Recalculate()
	return m
}

// SetClock replaces the time source used for debouncing and key repeat.
func (m *Menu) SetClock(now func() time.Time) {
	m.now = now
	m.directional.SetClock(now)
}

func (m *Menu) Title() string {
	return m.title.Text
}

func (m *Menu) SetTitle(title string) {
	m.title.Text = title
}

func (m *Menu) Subtitle() string {
	return m.subtitle.Text
}

func (m *Menu) SetSubtitle(subtitle string) {
	m.subtitle.Text = subtitle
}

// Items returns a copy of the rows.
func (m *Menu) Items() []Item {
	return slices.Clone(m.items)
}

func (m *Menu) Len() int {
	return len(m.items)
}

// Add appends rows. The first row added to an empty menu is selected.
func (m *Menu) Add(items ...Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		if s, ok := item.(Slidable); ok && m.arrowsAlwaysVisible {
			s.SetArrowsAlwaysVisible(true)
		}
		m.items = append(m.items, item)
	}
	if m.index < 0 && len(m.items) > 0 {
		m.index = 0
	}
	m.Recalculate()
}

// Remove deletes the first occurrence of item. It reports whether the item
// was found.
func (m *Menu) Remove(item Item) bool {
	i := slices.Index(m.items, item)
	if i < 0 {
		return false
	}
	return m.RemoveAt(i) == nil
}

// RemoveAt deletes the row at index.
func (m *Menu) RemoveAt(index int) error {
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("remove row %d of %d: %w", index, len(m.items), ErrIndexOutOfRange)
	}

	m.items = slices.Delete(m.items, index, index+1)

	switch {
	case len(m.items) == 0:
		m.index = -1
	case index < m.index:
		m.index--
	case m.index >= len(m.items):
		m.index = len(m.items) - 1
	}

	m.Recalculate()
	return nil
}

// Clear removes every row.
func (m *Menu) Clear() {
	m.items = nil
	m.index = -1
	m.visibleStart = 0
	m.Recalculate()
}

// SelectedIndex returns the selected row, or -1 when the menu is empty.
func (m *Menu) SelectedIndex() int {
	return m.index
}

// SetSelectedIndex selects a row and scrolls it into view.
func (m *Menu) SetSelectedIndex(index int) error {
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("select row %d of %d: %w", index, len(m.items), ErrIndexOutOfRange)
	}
	m.index = index
	m.scrollTo(index)
	m.Recalculate()
	return nil
}

// SelectedItem returns the selected row, or nil when the menu is empty.
func (m *Menu) SelectedItem() Item {
	if m.index < 0 || m.index >= len(m.items) {
		return nil
	}
	return m.items[m.index]
}

// VisibleRange returns the half-open range of rows currently on screen.
func (m *Menu) VisibleRange() (start, end int) {
	end = m.visibleStart + m.maxVisible()
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.visibleStart, end
}

// ArrowsAlwaysVisible reports the menu-wide arrow setting.
func (m *Menu) ArrowsAlwaysVisible() bool {
	return m.arrowsAlwaysVisible
}

// SetArrowsAlwaysVisible applies the flag to every slidable row, including
// rows added later, then runs the layout pass.
func (m *Menu) SetArrowsAlwaysVisible(visible bool) {
	m.arrowsAlwaysVisible = visible
	for _, item := range m.items {
		if s, ok := item.(Slidable); ok {
			s.SetArrowsAlwaysVisible(visible)
		}
	}
	m.Recalculate()
}

// ResetInput forgets held directions, e.g. when the menu loses focus.
func (m *Menu) ResetInput() {
	m.directional.Reset()
}

func (m *Menu) maxVisible() int {
	if m.MaxVisibleItems < 1 {
		return 1
	}
	return m.MaxVisibleItems
}

// Recalculate is the layout pass: it positions the header, subtitle band,
// background, highlight and description, and recalculates every visible row.
func (m *Menu) Recalculate() {
	if m.index >= len(m.items) {
		m.index = len(m.items) - 1
	}
	m.clampVisibleStart()

	x, y := m.Position.X, m.Position.Y

	m.header = rectElement{pos: m.Position, size: SizeF{Width: m.Width, Height: m.HeaderHeight}, visible: m.HeaderHeight > 0}
	m.title.Position = PointF{X: x + m.Width/2, Y: y + m.HeaderHeight/4}
	y += m.HeaderHeight

	m.subtitle.Position = PointF{X: x + constants.TitleOffsetX, Y: y + constants.TitleOffsetY}
	m.counter.Position = PointF{X: x + m.Width - constants.TitleOffsetX, Y: y + constants.TitleOffsetY}
	if len(m.items) == 0 {
		m.counter.Text = m.localizer.Text(internal.MsgMenuEmpty, nil)
	} else {
		m.counter.Text = m.localizer.Text(internal.MsgMenuCounter, map[string]any{
			"Current": m.index + 1,
			"Total":   len(m.items),
		})
	}
	y += m.SubtitleHeight

	start, end := m.VisibleRange()
	rowSize := SizeF{Width: m.Width, Height: m.ItemHeight}

	m.background = rectElement{
		pos:     PointF{X: x, Y: y},
		size:    SizeF{Width: m.Width, Height: float32(end-start) * m.ItemHeight},
		visible: end > start,
	}
	m.highlight.visible = false

	for i := start; i < end; i++ {
		rowPos := PointF{X: x, Y: y + float32(i-start)*m.ItemHeight}
		selected := i == m.index
		if selected {
			m.highlight = rectElement{pos: rowPos, size: rowSize, visible: true}
		}
		m.items[i].Recalculate(rowPos, rowSize, selected)
	}
	y += m.background.size.Height

	m.descBox.visible = false
	m.description.Text = ""
	if text := m.selectedDescription(); text != "" {
		padding := internal.UniformPadding(constants.DescriptionPadding)
		m.descBox = rectElement{
			pos:     PointF{X: x, Y: y + padding.Top},
			size:    SizeF{Width: m.Width, Height: m.ItemHeight + padding.Vertical()},
			visible: true,
		}
		m.description.Text = text
		m.description.Position = PointF{X: x + padding.Left, Y: m.descBox.pos.Y + padding.Top}
	}
}

func (m *Menu) selectedDescription() string {
	item := m.SelectedItem()
	if item == nil {
		return ""
	}
	if text := item.Description(); text != "" {
		return text
	}
	if s, ok := item.(Slidable); ok && m.ShowSlideHint && s.Enabled() {
		return m.localizer.Text(internal.MsgHintChange, nil)
	}
	return ""
}

func (m *Menu) clampVisibleStart() {
	maxStart := len(m.items) - m.maxVisible()
	if maxStart < 0 {
		maxStart = 0
	}
	if m.visibleStart > maxStart {
		m.visibleStart = maxStart
	}
	if m.visibleStart < 0 {
		m.visibleStart = 0
	}
}

// Draw issues the menu's draw calls. Recalculate must have run first.
func (m *Menu) Draw(r Renderer) {
	if m.header.visible {
		r.FillRect(m.header.pos, m.header.size, m.style.HeaderColor)
		m.title.Draw(r)
	}

	r.FillRect(PointF{X: m.Position.X, Y: m.Position.Y + m.HeaderHeight}, SizeF{Width: m.Width, Height: m.SubtitleHeight}, m.style.SubtitleColor)
	m.subtitle.Draw(r)
	m.counter.Draw(r)

	if m.background.visible {
		r.FillRect(m.background.pos, m.background.size, m.style.BackgroundColor)
	}
	if m.highlight.visible {
		r.FillRect(m.highlight.pos, m.highlight.size, m.style.HighlightColor)
	}

	start, end := m.VisibleRange()
	for i := start; i < end; i++ {
		m.items[i].Draw(r)
	}

	if m.descBox.visible {
		r.FillRect(m.descBox.pos, m.descBox.size, m.style.BackgroundColor)
		m.description.Draw(r)
	}
}

// HandleButton processes a press or release and returns what it did.
func (m *Menu) HandleButton(button constants.VirtualButton, pressed bool) MenuAction {
	if !pressed {
		m.directional.SetHeld(button, false)
		return MenuActionNone
	}

	now := m.now()
	if now.Sub(m.lastInputTime) < m.InputDelay {
		return MenuActionNone
	}
	m.lastInputTime = now

	if m.directional.SetHeld(button, true) {
		return m.navigate(internal.DirectionFor(button))
	}

	switch button {
	case constants.VirtualButtonA:
		return m.activate()
	case constants.VirtualButtonB:
		return MenuActionBack
	}
	return MenuActionNone
}

// Update fires key repeats for held directions. Call once per frame.
func (m *Menu) Update() MenuAction {
	dir := m.directional.Update()
	if dir == internal.DirectionNone {
		return MenuActionNone
	}
	return m.navigate(dir)
}

func (m *Menu) navigate(dir internal.Direction) MenuAction {
	switch dir {
	case internal.DirectionUp:
		return m.moveSelection(-1)
	case internal.DirectionDown:
		return m.moveSelection(1)
	case internal.DirectionLeft:
		return m.slide(DirectionLeft)
	case internal.DirectionRight:
		return m.slide(DirectionRight)
	}
	return MenuActionNone
}

// GoUp moves the selection up, wrapping to the last row.
func (m *Menu) GoUp() MenuAction {
	return m.moveSelection(-1)
}

// GoDown moves the selection down, wrapping to the first row.
func (m *Menu) GoDown() MenuAction {
	return m.moveSelection(1)
}

// GoLeft forwards to the selected row when it is an enabled Slidable.
func (m *Menu) GoLeft() MenuAction {
	return m.slide(DirectionLeft)
}

// GoRight forwards to the selected row when it is an enabled Slidable.
func (m *Menu) GoRight() MenuAction {
	return m.slide(DirectionRight)
}

// Select activates the selected row.
func (m *Menu) Select() MenuAction {
	return m.activate()
}

func (m *Menu) moveSelection(direction int) MenuAction {
	if len(m.items) == 0 {
		return MenuActionNone
	}

	m.index += direction
	if m.index >= len(m.items) {
		m.index = 0
	} else if m.index < 0 {
		m.index = len(m.items) - 1
	}

	m.scrollTo(m.index)
	m.Recalculate()

	if m.OnSelectionChanged != nil {
		m.OnSelectionChanged(m.index, m.items[m.index])
	}
	return MenuActionMoved
}

func (m *Menu) scrollTo(index int) {
	visible := m.maxVisible()
	if index < m.visibleStart {
		m.visibleStart = index
	} else if index >= m.visibleStart+visible {
		m.visibleStart = index - visible + 1
	}
	m.clampVisibleStart()
}

func (m *Menu) slide(dir ChangeDirection) MenuAction {
	s, ok := m.SelectedItem().(Slidable)
	if !ok || !s.Enabled() {
		return MenuActionNone
	}

	if dir == DirectionLeft {
		s.GoLeft()
	} else {
		s.GoRight()
	}

	internal.GetInternalLogger().Debug("Slid menu item", "menu", m.Title(), "item", s.Title(), "direction", dir.String())

	// Slidable rows never relayout themselves.
	m.Recalculate()
	return MenuActionChanged
}

func (m *Menu) activate() MenuAction {
	item := m.SelectedItem()
	if item == nil || !item.Enabled() {
		return MenuActionNone
	}

	if sub, ok := item.(*SubMenuItem); ok && sub.Menu() != nil {
		return MenuActionOpenSubMenu
	}

	item.Activate()
	if m.OnItemActivated != nil {
		m.OnItemActivated(m.index, item)
	}
	return MenuActionActivated
}
