// Package nativemenu provides in-game style menus on top of SDL2: slidable
// rows whose value is cycled with left and right, plain and submenu rows,
// a scrolling menu container and a pool that handles back navigation.
//
// The package handles SDL initialization, input from keyboards, game
// controllers and raw evdev devices, theming, localisation of the built-in
// strings and the frame loop.
package nativemenu

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/platform/cannoli"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme is the colour and font configuration shared by every menu.
type Theme = internal.Theme

// WindowOptions controls the SDL window flags and size.
type WindowOptions = internal.WindowOptions

// Options configures toolkit initialization.
type Options struct {
	WindowTitle   string        // Window title displayed in windowed mode
	WindowOptions WindowOptions // SDL window flags (borderless, resizable, etc.)
	Theme         *Theme        // Explicit theme; overrides presets
	ThemePath     string        // TOML theme file applied on top of the base theme
	Language      string        // BCP 47 tag for built-in strings
	LogPath       string        // Full path for log file including filename
	LogLevel      string        // Application log level ("debug", "info", ...)
	EvdevDevice   string        // Raw input device, e.g. /dev/input/event1
	IsCannoli     bool          // Use the Cannoli CFW colours and font
}

var evdevSource *internal.EvdevSource

// Init initializes SDL, the window, the font and input handling.
// Must be called before Run.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme()
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme(cannoli.DefaultFontPath)
	}
	if options.Theme != nil {
		theme = *options.Theme
	}

	if options.ThemePath != "" {
		loaded, err := internal.LoadThemeFile(options.ThemePath, theme)
		if err != nil {
			return NewInfrastructureError("theme", err)
		}
		theme = loaded
	}

	if lang := os.Getenv(constants.LanguageEnvVar); lang != "" {
		theme.Language = lang
	}
	if options.Language != "" {
		theme.Language = options.Language
	}

	internal.SetTheme(theme)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	device := options.EvdevDevice
	if device == "" {
		device = os.Getenv(constants.EvdevDeviceEnvVar)
	}
	if device != "" {
		source, err := internal.OpenEvdevSource(device)
		if err != nil {
			// Keyboard and controllers still work.
			internal.GetInternalLogger().Error("Failed to open evdev device", "error", NewInfrastructureError("evdev", err))
		} else {
			evdevSource = source
		}
	}

	internal.GetInternalLogger().Debug("Initialized", "language", theme.Language, "font", theme.FontPath)

	return nil
}

// Close releases all SDL resources and shuts down the toolkit.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if evdevSource != nil {
		if err := evdevSource.Close(); err != nil {
			internal.GetInternalLogger().Debug("Failed to close evdev device", "error", err)
		}
		evdevSource = nil
	}
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogOutput sends all logs to w instead of stdout and the log file.
// Call before the first log message.
func SetLogOutput(w io.Writer) {
	internal.SetLogOutput(w)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// LoadLocaleFile adds translations for the built-in strings from a TOML
// message file named like "active.fr.toml".
func LoadLocaleFile(path string) error {
	return internal.LoadLocaleFile(path)
}

// SetTheme replaces the active theme. Styles created afterwards pick it up.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return internal.GetTheme()
}

// LoadThemeFile reads a TOML theme file on top of base.
func LoadThemeFile(path string, base Theme) (Theme, error) {
	return internal.LoadThemeFile(path, base)
}

// HexToColor converts a 0xRRGGBB value into an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return internal.HexToColor(hex)
}
