// Package i18n renders user-facing messages. Spanish is the default language;
// English is bundled as well.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

const DefaultLanguage = "es"

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Init loads the embedded locale files. Safe to call more than once.
func Init() {
	b := goi18n.NewBundle(language.Spanish)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, f := range []string{"locales/active.es.json", "locales/active.en.json"} {
		if _, err := b.LoadMessageFileFS(locales, f); err != nil {
			panic(err)
		}
	}

	mu.Lock()
	bundle = b
	mu.Unlock()
}

// Load adds messages from a file on disk, overriding embedded ones with the same id.
func Load(path string) error {
	b := current()
	mu.Lock()
	defer mu.Unlock()
	_, err := b.LoadMessageFile(path)
	return err
}

// Localize renders messageID in lang. On any failure the message id is returned.
func Localize(lang, messageID string, data map[string]any) string {
	loc := goi18n.NewLocalizer(current(), lang, DefaultLanguage)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}

func current() *goi18n.Bundle {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b != nil {
		return b
	}
	Init()
	mu.RLock()
	defer mu.RUnlock()
	return bundle
}

type langKey struct{}

func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

func LanguageFrom(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLanguage
}
