// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultFontPath is where Cannoli ships its system font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	theme := internal.DefaultTheme()

	theme.ArrowColor = internal.HexToColor(0x000000)
	theme.TitleColor = internal.HexToColor(0xFFFFFF)
	theme.SelectedTitleColor = internal.HexToColor(0x000000)
	theme.DisabledTitleColor = internal.HexToColor(0x7F7F7F)
	theme.HeaderColor = internal.HexToColor(0x008080)
	theme.HeaderTextColor = internal.HexToColor(0xFFFFFF)
	theme.SubtitleColor = internal.HexToColor(0x000000)
	theme.BackgroundColor = sdl.Color{R: 0, G: 0, B: 0, A: 200}
	theme.HighlightColor = internal.HexToColor(0xFFFFFF)
	theme.DescriptionColor = internal.HexToColor(0xFFFFFF)
	theme.FontPath = fontPath
	theme.FontSize = 28

	return theme
}
