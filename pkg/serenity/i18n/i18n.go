// Package i18n localises screen titles and choice labels.
//
// Messages live in embedded TOML files, one per language. Callers pass the
// message with its English text as Other, so a missing translation or an
// uninitialised bundle still yields readable output.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Supported lists the languages with an embedded message file.
var Supported = []language.Tag{language.English, language.Spanish}

var (
	mu        sync.RWMutex
	localizer *goi18n.Localizer
	current   = language.English
)

// Init loads the embedded message files and selects lang, a BCP 47 tag such
// as "es" or "en-GB". Unsupported languages fall back to English.
func Init(lang string) error {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range Supported {
		path := fmt.Sprintf("locales/active.%s.toml", tag)
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	tag := Match(lang)

	mu.Lock()
	localizer = goi18n.NewLocalizer(bundle, tag.String())
	current = tag
	mu.Unlock()

	internal.GetInternalLogger().Debug("Localizer ready", "requested", lang, "language", tag.String())
	return nil
}

// Match returns the supported language closest to lang.
func Match(lang string) language.Tag {
	if lang == "" {
		return language.English
	}
	requested, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(requested) == 0 {
		return language.English
	}
	_, index, confidence := language.NewMatcher(Supported).Match(requested...)
	if confidence == language.No {
		return language.English
	}
	return Supported[index]
}

// Language returns the selected language.
func Language() language.Tag {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Localize renders msg in the selected language, loading English on first use
// if Init was never called. data fills template fields.
func Localize(msg *goi18n.Message, data map[string]any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		if err := Init(""); err != nil {
			return msg.Other
		}
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	out, err := l.Localize(&goi18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if err != nil {
		internal.GetInternalLogger().Debug("Missing translation", "id", msg.ID, "error", err)
		if out != "" {
			return out
		}
		return msg.Other
	}
	return out
}
