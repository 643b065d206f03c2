package nativemenu

// MenuAction reports what a button press did to a menu.
type MenuAction int

const (
	MenuActionNone        MenuAction = iota // Input ignored
	MenuActionMoved                         // Selection moved up or down
	MenuActionChanged                       // A slidable value changed
	MenuActionActivated                     // The selected item was activated (A button)
	MenuActionOpenSubMenu                   // A SubMenuItem asked to open its menu
	MenuActionBack                          // Back was requested (B button)
)

func (a MenuAction) String() string {
	switch a {
	case MenuActionMoved:
		return "moved"
	case MenuActionChanged:
		return "changed"
	case MenuActionActivated:
		return "activated"
	case MenuActionOpenSubMenu:
		return "open_submenu"
	case MenuActionBack:
		return "back"
	default:
		return "none"
	}
}
