package internal

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of menus.
// Colors can be loaded from a TOML theme file or taken from a platform preset.
type Theme struct {
	ArrowColor         sdl.Color // Slidable arrows
	TitleColor         sdl.Color // Item titles on unselected rows
	SelectedTitleColor sdl.Color // Item titles on the selected row
	DisabledTitleColor sdl.Color // Item titles on disabled rows
	HeaderColor        sdl.Color // Menu header band
	HeaderTextColor    sdl.Color // Menu title text
	SubtitleColor      sdl.Color // Subtitle band and counter text
	BackgroundColor    sdl.Color // Row background
	HighlightColor     sdl.Color // Selected row background
	DescriptionColor   sdl.Color // Description box text
	SpriteDictionary   string    // Sprite sheet used for arrows and badges
	FontPath           string    // Path to the primary UI font
	FontSize           int       // Point size of the primary UI font
	Language           string    // BCP 47 tag used for built-in strings
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// DefaultTheme returns the built-in colour scheme.
func DefaultTheme() Theme {
	return Theme{
		ArrowColor:         HexToColor(0x000000),
		TitleColor:         HexToColor(0xF0F0F0),
		SelectedTitleColor: HexToColor(0x000000),
		DisabledTitleColor: HexToColor(0xA3A3A3),
		HeaderColor:        HexToColor(0x2D6EB9),
		HeaderTextColor:    HexToColor(0xFFFFFF),
		SubtitleColor:      HexToColor(0x000000),
		BackgroundColor:    sdl.Color{R: 0, G: 0, B: 0, A: 180},
		HighlightColor:     HexToColor(0xF0F0F0),
		DescriptionColor:   HexToColor(0xF0F0F0),
		SpriteDictionary:   "commonmenu",
		FontSize:           24,
		Language:           "en",
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (the leading # is optional).
func ParseHexColor(s string) (sdl.Color, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(raw) {
	case 6, 8:
	default:
		return sdl.Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}

	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return sdl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(raw) == 6 {
		return HexToColor(uint32(value)), nil
	}

	return sdl.Color{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}
