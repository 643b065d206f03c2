package internal

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs of the built-in strings.
const (
	MsgMenuCounter = "MenuCounter"
	MsgMenuEmpty   = "MenuEmpty"
	MsgToggleOn    = "ToggleOn"
	MsgToggleOff   = "ToggleOff"
	MsgHintChange  = "HintChange"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundleMu   sync.Mutex
	bundle     *i18n.Bundle
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		files, err := fs.Glob(localeFS, "locales/*.toml")
		if err != nil {
			GetInternalLogger().Error("Failed to list embedded locales", "error", err)
			return
		}
		for _, file := range files {
			data, err := localeFS.ReadFile(file)
			if err != nil {
				GetInternalLogger().Error("Failed to read embedded locale", "file", file, "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, file); err != nil {
				GetInternalLogger().Error("Failed to parse embedded locale", "file", file, "error", err)
			}
		}
	})
	return bundle
}

// LoadLocaleFile adds an application message file (e.g. active.fr.toml).
// The language is taken from the file name.
func LoadLocaleFile(path string) error {
	b := getBundle()

	bundleMu.Lock()
	defer bundleMu.Unlock()

	if _, err := b.LoadMessageFile(path); err != nil {
		return fmt.Errorf("load locale %s: %w", path, err)
	}
	return nil
}

// Localizer resolves message IDs for a preferred language.
type Localizer struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewLocalizer returns a localizer for the given BCP 47 tags, in preference
// order. Unparseable tags are skipped and English is the final fallback.
func NewLocalizer(langs ...string) *Localizer {
	tag := language.English
	for _, l := range langs {
		if parsed, err := language.Parse(l); err == nil {
			tag = parsed
			break
		}
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(getBundle(), append(langs, language.English.String())...),
		tag:       tag,
	}
}

// Language returns the preferred language tag.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text returns the localized message, or the message ID when it is unknown.
func (l *Localizer) Text(id string, data map[string]any) string {
	bundleMu.Lock()
	defer bundleMu.Unlock()

	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		GetInternalLogger().Debug("Missing translation", "id", id, "language", l.tag.String(), "error", err)
		// A fallback-language message may still be returned alongside the error.
		if msg != "" {
			return msg
		}
		return id
	}
	return msg
}
