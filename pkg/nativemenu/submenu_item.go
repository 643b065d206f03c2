package nativemenu

import "github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"

// SubMenuItem opens a child menu when activated. The owning Pool performs
// the navigation.
type SubMenuItem struct {
	*BaseItem

	menu      *Menu
	indicator *ScaledText
}

// NewSubMenuItem creates a row that opens menu. Title and description
// default to the child's when empty.
func NewSubMenuItem(title, description string, style Style, menu *Menu) *SubMenuItem {
	if title == "" && menu != nil {
		title = menu.Title()
	}

	indicator := NewScaledText(PointF{}, ">>>", style.TitleScale)
	indicator.Alignment = constants.TextAlignRight

	return &SubMenuItem{
		BaseItem:  NewItem(title, description, style),
		menu:      menu,
		indicator: indicator,
	}
}

// Menu returns the child menu.
func (s *SubMenuItem) Menu() *Menu {
	return s.menu
}

func (s *SubMenuItem) Recalculate(pos PointF, size SizeF, selected bool) {
	s.BaseItem.Recalculate(pos, size, selected)
	s.indicator.Position = PointF{
		X: pos.X + size.Width - constants.ArrowMarginX,
		Y: pos.Y + constants.TitleOffsetY,
	}
	s.indicator.Color = s.titleColor(selected)
}

func (s *SubMenuItem) Draw(r Renderer) {
	s.BaseItem.Draw(r)
	s.indicator.Draw(r)
}
