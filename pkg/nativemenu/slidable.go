package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

// Slidable is a row whose value is changed with left and right input.
// ListItem, DynamicItem and StepperItem implement it.
type Slidable interface {
	Item
	// GoLeft moves the value one step back. It neither draws nor lays out.
	GoLeft()
	// GoRight moves the value one step forward. It neither draws nor lays out.
	GoRight()
	ArrowsAlwaysVisible() bool
	// SetArrowsAlwaysVisible stores the flag and returns it. The caller
	// recalculates the row afterwards.
	SetArrowsAlwaysVisible(visible bool) bool
}

// SlidableItem is the shared base of slidable rows: a title row decorated
// with a left and a right arrow.
type SlidableItem struct {
	*BaseItem

	alwaysVisible bool
	arrowLeft     *ScaledTexture
	arrowRight    *ScaledTexture
}

// NewSlidableItem creates the row with both arrows hidden at the origin.
func NewSlidableItem(title, description string, style Style) *SlidableItem {
	arrowLeft := NewScaledTexture(PointF{}, SizeF{}, style.Dictionary, constants.ArrowLeftTexture)
	arrowLeft.Color = style.ArrowColor

	arrowRight := NewScaledTexture(PointF{}, SizeF{}, style.Dictionary, constants.ArrowRightTexture)
	arrowRight.Color = style.ArrowColor

	return &SlidableItem{
		BaseItem:   NewItem(title, description, style),
		arrowLeft:  arrowLeft,
		arrowRight: arrowRight,
	}
}

func (s *SlidableItem) ArrowsAlwaysVisible() bool {
	return s.alwaysVisible
}

func (s *SlidableItem) SetArrowsAlwaysVisible(visible bool) bool {
	s.alwaysVisible = visible
	return s.alwaysVisible
}

func (s *SlidableItem) ArrowLeft() *ScaledTexture {
	return s.arrowLeft
}

func (s *SlidableItem) ArrowRight() *ScaledTexture {
	return s.arrowRight
}

func (s *SlidableItem) arrowsVisible(selected bool) bool {
	return (selected && s.Enabled()) || s.alwaysVisible
}

// Recalculate lays out the base row, sizes both arrows and anchors the right
// arrow to the row's right edge. The left arrow keeps its position.
func (s *SlidableItem) Recalculate(pos PointF, size SizeF, selected bool) {
	s.BaseItem.Recalculate(pos, size, selected)

	arrowSize := SizeF{}
	if s.arrowsVisible(selected) {
		arrowSize = Square(constants.ArrowSize)
	}
	s.arrowLeft.Size = arrowSize
	s.arrowRight.Size = arrowSize

	s.arrowRight.Position = PointF{
		X: pos.X + size.Width - s.arrowRight.Size.Width - constants.ArrowMarginX,
		Y: pos.Y + constants.ArrowOffsetY,
	}
}

// Draw issues the title, the badge when present, then both arrows.
func (s *SlidableItem) Draw(r Renderer) {
	s.title.Draw(r)
	if s.badgeLeft != nil {
		s.badgeLeft.Draw(r)
	}
	s.arrowLeft.Draw(r)
	s.arrowRight.Draw(r)
}

// placeValue right-aligns a value text against the right arrow and puts the
// left arrow just before the text.
func (s *SlidableItem) placeValue(value *ScaledText, pos PointF, selected bool) {
	right := s.arrowRight.Position.X

	value.Position = PointF{X: right, Y: pos.Y + constants.TitleOffsetY}
	value.Alignment = constants.TextAlignRight
	value.Color = s.titleColor(selected)

	width := value.Width(s.style.measurer())
	s.arrowLeft.Position = PointF{
		X: right - width - s.arrowLeft.Size.Width,
		Y: pos.Y + constants.ArrowOffsetY,
	}
}
