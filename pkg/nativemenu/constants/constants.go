// Package constants defines shared constants, types, and layout values
// used throughout the nativemenu toolkit.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the toolkit.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	EvdevDeviceEnvVar  = "NATIVEMENU_EVDEV_DEVICE"
	LanguageEnvVar     = "NATIVEMENU_LANG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from keyboards,
// controllers and raw evdev devices.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonStart
	VirtualButtonSelect
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment relative to the text position.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Position is the left edge
	TextAlignCenter                  // Position is the horizontal centre
	TextAlignRight                   // Position is the right edge
)

// Sprite dictionary and texture names.
const (
	CommonMenuDictionary = "commonmenu"

	ArrowLeftTexture  = "arrowleft"
	ArrowRightTexture = "arrowright"

	BadgeTickTexture  = "shop_tick_icon"
	BadgeLockTexture  = "shop_lock"
	BadgeStarTexture  = "shop_new_star"
	BadgeAlertTexture = "mp_alerttriangle"
)

// Slidable arrow geometry.
const (
	ArrowSize    float32 = 30 // Width and height of a visible arrow
	ArrowMarginX float32 = 5  // Gap between the right arrow and the row's right edge
	ArrowOffsetY float32 = 4  // Offset from the row's top edge
)

// Item geometry.
const (
	TitleOffsetX float32 = 6
	TitleOffsetY float32 = 3
	BadgeOffsetX float32 = 2
	BadgeSize    float32 = 30
	TitleScale   float32 = 0.345
)

// Menu geometry.
const (
	DefaultMenuWidth       float32 = 431
	DefaultHeaderHeight    float32 = 80
	DefaultSubtitleHeight  float32 = 38
	DefaultItemHeight      float32 = 38
	DefaultMaxVisibleItems         = 10
	DescriptionPadding     float32 = 8
)

// Default timing constants.
const (
	DefaultInputDelay     = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay    = 300 * time.Millisecond // Hold time before the first repeat
	DefaultRepeatInterval = 80 * time.Millisecond  // Time between repeats while held
	FrameDuration         = 16 * time.Millisecond
)
