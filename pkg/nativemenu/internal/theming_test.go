package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want sdl.Color
	}{
		{"#000000", sdl.Color{R: 0, G: 0, B: 0, A: 255}},
		{"2D6EB9", sdl.Color{R: 0x2D, G: 0x6E, B: 0xB9, A: 255}},
		{"#000000B4", sdl.Color{R: 0, G: 0, B: 0, A: 180}},
		{"  #ffffff ", sdl.Color{R: 255, G: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHexColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 255}, HexToColor(0x123456))
}

func TestDecodeTheme(t *testing.T) {
	base := DefaultTheme()

	theme, err := DecodeTheme(`
language = "de"

[font]
path = "/fonts/Inter.ttf"
size = 20

[sprites]
dictionary = "custommenu"

[colors]
arrow = "#FF0000"
background = "#00000080"
sparkle = "#FFFFFF"
`, base)
	require.NoError(t, err)

	assert.Equal(t, "de", theme.Language)
	assert.Equal(t, "/fonts/Inter.ttf", theme.FontPath)
	assert.Equal(t, 20, theme.FontSize)
	assert.Equal(t, "custommenu", theme.SpriteDictionary)
	assert.Equal(t, sdl.Color{R: 255, A: 255}, theme.ArrowColor)
	assert.Equal(t, sdl.Color{A: 128}, theme.BackgroundColor)
	assert.Equal(t, base.HighlightColor, theme.HighlightColor, "unset colors keep the base value")
}

func TestDecodeThemeErrors(t *testing.T) {
	_, err := DecodeTheme(`[colors]
arrow = "red"`, DefaultTheme())
	assert.ErrorContains(t, err, "arrow")

	_, err = DecodeTheme(`not toml = = =`, DefaultTheme())
	assert.Error(t, err)
}

func TestLoadThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte("[colors]\nhighlight = \"#101010\"\n"), 0644))

	theme, err := LoadThemeFile(path, DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, HexToColor(0x101010), theme.HighlightColor)

	_, err = LoadThemeFile(filepath.Join(t.TempDir(), "missing.toml"), DefaultTheme())
	assert.Error(t, err)
}

func TestSetTheme(t *testing.T) {
	original := GetTheme()
	t.Cleanup(func() { SetTheme(original) })

	theme := DefaultTheme()
	theme.Language = "es"
	SetTheme(theme)

	assert.Equal(t, "es", GetTheme().Language)
}
