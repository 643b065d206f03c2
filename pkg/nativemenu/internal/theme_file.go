package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/veandco/go-sdl2/sdl"
)

// themeFile mirrors the on-disk TOML layout. Empty fields keep the base value.
type themeFile struct {
	Font struct {
		Path string `toml:"path"`
		Size int    `toml:"size"`
	} `toml:"font"`
	Sprites struct {
		Dictionary string `toml:"dictionary"`
	} `toml:"sprites"`
	Language string            `toml:"language"`
	Colors   map[string]string `toml:"colors"`
}

// LoadThemeFile reads a TOML theme and overlays it on base.
//
//	language = "es"
//
//	[font]
//	path = "/usr/share/fonts/Inter.ttf"
//	size = 22
//
//	[colors]
//	arrow = "#000000"
//	highlight = "#F0F0F0"
func LoadThemeFile(path string, base Theme) (Theme, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return base, fmt.Errorf("decode theme %s: %w", path, err)
	}
	return applyThemeFile(file, base)
}

// DecodeTheme is LoadThemeFile for in-memory TOML.
func DecodeTheme(data string, base Theme) (Theme, error) {
	var file themeFile
	if _, err := toml.Decode(data, &file); err != nil {
		return base, fmt.Errorf("decode theme: %w", err)
	}
	return applyThemeFile(file, base)
}

func applyThemeFile(file themeFile, theme Theme) (Theme, error) {
	if file.Font.Path != "" {
		theme.FontPath = file.Font.Path
	}
	if file.Font.Size > 0 {
		theme.FontSize = file.Font.Size
	}
	if file.Sprites.Dictionary != "" {
		theme.SpriteDictionary = file.Sprites.Dictionary
	}
	if file.Language != "" {
		theme.Language = file.Language
	}

	targets := map[string]*sdl.Color{
		"arrow":          &theme.ArrowColor,
		"title":          &theme.TitleColor,
		"selected_title": &theme.SelectedTitleColor,
		"disabled_title": &theme.DisabledTitleColor,
		"header":         &theme.HeaderColor,
		"header_text":    &theme.HeaderTextColor,
		"subtitle":       &theme.SubtitleColor,
		"background":     &theme.BackgroundColor,
		"highlight":      &theme.HighlightColor,
		"description":    &theme.DescriptionColor,
	}

	for name, raw := range file.Colors {
		target, ok := targets[name]
		if !ok {
			GetInternalLogger().Warn("Unknown theme color; ignoring", "name", name)
			continue
		}
		color, err := ParseHexColor(raw)
		if err != nil {
			return theme, fmt.Errorf("theme color %s: %w", name, err)
		}
		*target = color
	}

	return theme, nil
}
