package nativemenu

import "github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"

// NewToggleItem creates a list row over Off/On, labelled in the style's
// language.
func NewToggleItem(title, description string, style Style, on bool) *ListItem[bool] {
	localizer := internal.NewLocalizer(style.Language)
	onText := localizer.Text(internal.MsgToggleOn, nil)
	offText := localizer.Text(internal.MsgToggleOff, nil)

	item := NewListItem(title, description, style, false, true)
	item.Format = func(v bool) string {
		if v {
			return onText
		}
		return offText
	}
	if on {
		item.index = 1
	}
	item.refreshText()
	return item
}
