package main

import (
	"fmt"

	"github.com/BrandonKowalski/nativemenu/pkg/nativemenu"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DemoSettings are the values edited by the demo menus.
type DemoSettings struct {
	Difficulty          string  `yaml:"difficulty"`
	Subtitles           bool    `yaml:"subtitles"`
	Players             int     `yaml:"players"`
	MusicVolume         float64 `yaml:"musicVolume"`
	SoundVolume         float64 `yaml:"soundVolume"`
	ArrowsAlwaysVisible bool    `yaml:"arrowsAlwaysVisible"`
}

func DefaultSettings() *DemoSettings {
	return &DemoSettings{
		Difficulty:  "Normal",
		Subtitles:   true,
		Players:     1,
		MusicVolume: 70,
		SoundVolume: 80,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "demo"
)

// SettingsManager loads and saves DemoSettings through gdata. A nil
// manager keeps settings in memory only.
type SettingsManager struct {
	store    *gdata.Manager
	settings *DemoSettings
}

// NewSettingsManager loads saved settings, falling back to defaults when
// they are missing or unreadable.
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		nativemenu.GetLogger().Warn("Failed to load settings; using defaults", "error", err)
	}

	return sm, nil
}

func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}

	sm.settings = loaded
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	nativemenu.GetLogger().Info("Settings saved")
	return nil
}

// Settings returns the live settings; changes are kept until Save.
func (sm *SettingsManager) Settings() *DemoSettings {
	return sm.settings
}
