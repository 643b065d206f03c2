package main

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := gdata.Open(gdata.Config{AppName: "nativemenu_demo_test"})
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return store
}

func TestSettingsManagerWithoutStore(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), sm.Settings())

	sm.Settings().Players = 3
	assert.NoError(t, sm.Save())

	require.NoError(t, sm.Load())
	assert.Equal(t, 1, sm.Settings().Players, "nothing is persisted without a store")
}

func TestSettingsManagerRoundTrip(t *testing.T) {
	store := openTestStore(t)

	sm, err := NewSettingsManager(store)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), sm.Settings())

	sm.Settings().Difficulty = "Hard"
	sm.Settings().MusicVolume = 35
	require.NoError(t, sm.Save())

	reloaded, err := NewSettingsManager(store)
	require.NoError(t, err)
	assert.Equal(t, "Hard", reloaded.Settings().Difficulty)
	assert.Equal(t, float64(35), reloaded.Settings().MusicVolume)
	assert.True(t, reloaded.Settings().Subtitles)
}

func TestSettingsManagerCorruptData(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveObjectProp(settingsObject, settingsProperty, []byte("players: [")))

	sm, err := NewSettingsManager(store)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), sm.Settings())
	assert.Error(t, sm.Load())
}
