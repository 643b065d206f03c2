package internal

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// ErrNoFont is returned when the theme does not name a font file.
var ErrNoFont = errors.New("theme has no font path")

// Fonts holds the loaded UI font.
var Fonts struct {
	Primary *ttf.Font
	Size    int
}

func initFonts(theme Theme) error {
	if theme.FontPath == "" {
		return ErrNoFont
	}

	size := theme.FontSize
	if size <= 0 {
		size = DefaultTheme().FontSize
	}

	font, err := ttf.OpenFont(theme.FontPath, size)
	if err != nil {
		return fmt.Errorf("open font %s: %w", theme.FontPath, err)
	}

	Fonts.Primary = font
	Fonts.Size = size
	return nil
}

func closeFonts() {
	if Fonts.Primary != nil {
		Fonts.Primary.Close()
		Fonts.Primary = nil
	}
}
