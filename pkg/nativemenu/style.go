package nativemenu

import (
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Style is the visual configuration handed to items and menus at
// construction time.
type Style struct {
	Dictionary         string // Sprite sheet holding arrows and badges
	ArrowColor         sdl.Color
	TitleColor         sdl.Color
	SelectedTitleColor sdl.Color
	DisabledTitleColor sdl.Color
	HeaderColor        sdl.Color
	HeaderTextColor    sdl.Color
	SubtitleColor      sdl.Color
	BackgroundColor    sdl.Color
	HighlightColor     sdl.Color
	DescriptionColor   sdl.Color
	TitleScale         float32
	Language           string       // BCP 47 tag for built-in strings
	Measurer           TextMeasurer // Nil falls back to a fixed-width estimate
}

// DefaultStyle derives a Style from the active theme.
func DefaultStyle() Style {
	return StyleFromTheme(internal.GetTheme())
}

func StyleFromTheme(theme internal.Theme) Style {
	dictionary := theme.SpriteDictionary
	if dictionary == "" {
		dictionary = constants.CommonMenuDictionary
	}

	return Style{
		Dictionary:         dictionary,
		ArrowColor:         theme.ArrowColor,
		TitleColor:         theme.TitleColor,
		SelectedTitleColor: theme.SelectedTitleColor,
		DisabledTitleColor: theme.DisabledTitleColor,
		HeaderColor:        theme.HeaderColor,
		HeaderTextColor:    theme.HeaderTextColor,
		SubtitleColor:      theme.SubtitleColor,
		BackgroundColor:    theme.BackgroundColor,
		HighlightColor:     theme.HighlightColor,
		DescriptionColor:   theme.DescriptionColor,
		TitleScale:         constants.TitleScale,
		Language:           theme.Language,
		Measurer:           defaultMeasurer(),
	}
}

func (s Style) measurer() TextMeasurer {
	if s.Measurer != nil {
		return s.Measurer
	}
	return FixedWidthMeasurer{RuneWidth: 30}
}
