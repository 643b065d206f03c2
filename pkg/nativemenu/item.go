package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Item is a single selectable row within a menu.
type Item interface {
	Title() string
	SetTitle(title string)
	Description() string
	SetDescription(description string)
	Enabled() bool
	SetEnabled(enabled bool)
	// Recalculate lays the row out at pos with the given size.
	Recalculate(pos PointF, size SizeF, selected bool)
	// Draw issues the row's draw calls. Recalculate must have run first.
	Draw(r Renderer)
	// Activate is called when the row is confirmed (A button).
	Activate()
}

// BaseItem owns the title, description and optional left badge of a row.
// Concrete item kinds embed it.
type BaseItem struct {
	title       *ScaledText
	description string
	badgeLeft   *ScaledTexture
	enabled     bool
	style       Style

	OnActivated func()
	Tag         any // Application data attached to the row
}

// NewItem creates a plain, enabled row.
func NewItem(title, description string, style Style) *BaseItem {
	text := NewScaledText(PointF{}, title, style.TitleScale)
	text.Color = style.TitleColor

	return &BaseItem{
		title:       text,
		description: description,
		enabled:     true,
		style:       style,
	}
}

func (i *BaseItem) Title() string {
	return i.title.Text
}

func (i *BaseItem) SetTitle(title string) {
	i.title.Text = title
}

func (i *BaseItem) Description() string {
	return i.description
}

func (i *BaseItem) SetDescription(description string) {
	i.description = description
}

func (i *BaseItem) Enabled() bool {
	return i.enabled
}

func (i *BaseItem) SetEnabled(enabled bool) {
	i.enabled = enabled
}

// Style returns the style the row was created with.
func (i *BaseItem) Style() Style {
	return i.style
}

// TitleElement exposes the title text element.
func (i *BaseItem) TitleElement() *ScaledText {
	return i.title
}

// Badge returns the left badge, or nil when none is set.
func (i *BaseItem) Badge() *ScaledTexture {
	return i.badgeLeft
}

// SetBadge shows texture from the style's dictionary left of the title.
func (i *BaseItem) SetBadge(texture string) {
	i.badgeLeft = NewScaledTexture(PointF{}, SizeF{}, i.style.Dictionary, texture)
}

func (i *BaseItem) ClearBadge() {
	i.badgeLeft = nil
}

func (i *BaseItem) titleColor(selected bool) sdl.Color {
	switch {
	case !i.enabled:
		return i.style.DisabledTitleColor
	case selected:
		return i.style.SelectedTitleColor
	default:
		return i.style.TitleColor
	}
}

// Recalculate places the badge and title inside the row.
func (i *BaseItem) Recalculate(pos PointF, size SizeF, selected bool) {
	color := i.titleColor(selected)
	titleX := pos.X + constants.TitleOffsetX

	if i.badgeLeft != nil {
		i.badgeLeft.Position = pos.Add(constants.BadgeOffsetX, constants.ArrowOffsetY)
		i.badgeLeft.Size = Square(constants.BadgeSize)
		i.badgeLeft.Color = color
		titleX += constants.BadgeSize
	}

	i.title.Position = PointF{X: titleX, Y: pos.Y + constants.TitleOffsetY}
	i.title.Color = color
}

// Draw issues the title and, when present, the badge.
func (i *BaseItem) Draw(r Renderer) {
	i.title.Draw(r)
	if i.badgeLeft != nil {
		i.badgeLeft.Draw(r)
	}
}

// Activate runs OnActivated on enabled rows.
func (i *BaseItem) Activate() {
	if i.enabled && i.OnActivated != nil {
		i.OnActivated()
	}
}
