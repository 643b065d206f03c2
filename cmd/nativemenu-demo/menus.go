package main

import (
	"fmt"
	"slices"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu/constants"
)

var difficulties = []string{"Easy", "Normal", "Hard", "Nightmare"}

const maxPlayers = 4

// buildMenus creates the options menu tree. Every change is written to
// settings straight away; "Save and exit" persists them.
func buildMenus(style nativemenu.Style, sm *SettingsManager) *nativemenu.Pool {
	s := sm.Settings()
	logger := nativemenu.GetLogger()
	pool := nativemenu.NewPool()

	audio := nativemenu.NewMenu("Audio", "Volume levels", style)

	music := nativemenu.NewStepperItem("Music", "Background music volume", style, 0, 100, 5, s.MusicVolume)
	music.Suffix = "%"
	music.OnValueChanged = func(e nativemenu.ValueChangedEvent[float64]) {
		s.MusicVolume = e.New
	}

	sound := nativemenu.NewStepperItem("Effects", "Sound effect volume", style, 0, 100, 5, s.SoundVolume)
	sound.Suffix = "%"
	sound.OnValueChanged = func(e nativemenu.ValueChangedEvent[float64]) {
		s.SoundVolume = e.New
	}

	audio.Add(music, sound)

	root := nativemenu.NewMenu("Options", "Game settings", style)
	root.ShowSlideHint = true

	difficulty := nativemenu.NewListItem("Difficulty", "", style, difficulties...)
	if i := slices.Index(difficulties, s.Difficulty); i >= 0 {
		_ = difficulty.SetSelectedIndex(i)
	}
	difficulty.OnItemChanged = func(e nativemenu.ItemChangedEvent[string]) {
		s.Difficulty = e.Object
		logger.Debug("Difficulty changed", "value", e.Object, "direction", e.Direction.String())
	}

	subtitles := nativemenu.NewToggleItem("Subtitles", "Show dialogue subtitles", style, s.Subtitles)
	subtitles.OnItemChanged = func(e nativemenu.ItemChangedEvent[bool]) {
		s.Subtitles = e.Object
	}

	players := nativemenu.NewDynamicItem("Players", "", style, s.Players, nextPlayerCount)
	players.Format = func(n int) string {
		if n == 1 {
			return "1 player"
		}
		return fmt.Sprintf("%d players", n)
	}
	players.OnValueChanged = func(e nativemenu.ValueChangedEvent[int]) {
		s.Players = e.New
	}

	audioItem := nativemenu.NewSubMenuItem("", "Music and effects", style, audio)

	arrows := nativemenu.NewToggleItem("Always show arrows", "", style, s.ArrowsAlwaysVisible)
	arrows.SetBadge(constants.BadgeStarTexture)
	arrows.OnItemChanged = func(e nativemenu.ItemChangedEvent[bool]) {
		s.ArrowsAlwaysVisible = e.Object
		root.SetArrowsAlwaysVisible(e.Object)
		audio.SetArrowsAlwaysVisible(e.Object)
	}

	save := nativemenu.NewItem("Save and exit", "Write settings and quit", style)
	save.SetBadge(constants.BadgeTickTexture)
	save.OnActivated = func() {
		if err := sm.Save(); err != nil {
			logger.Error("Failed to save settings", "error", err)
		}
		pool.Close()
	}

	root.Add(difficulty, subtitles, players, audioItem, arrows, save)

	root.SetArrowsAlwaysVisible(s.ArrowsAlwaysVisible)
	audio.SetArrowsAlwaysVisible(s.ArrowsAlwaysVisible)

	pool.Open(root)
	return pool
}

func nextPlayerCount(current int, dir nativemenu.ChangeDirection) int {
	if dir == nativemenu.DirectionLeft {
		current--
	} else {
		current++
	}
	switch {
	case current < 1:
		return maxPlayers
	case current > maxPlayers:
		return 1
	}
	return current
}
