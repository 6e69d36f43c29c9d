// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package i18n localizes page chrome. Korean is the fallback locale.
package i18n

import (
	"context"
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.toml
var translationFS embed.FS

// Supported lists the available locales. The first entry is the fallback.
var Supported = []language.Tag{
	language.Korean,
	language.English,
}

var (
	bundle  *i18n.Bundle
	matcher = language.NewMatcher(Supported)
)

type localeContextKey struct{}
type localizerContextKey struct{}

// Init initializes the i18n bundle with embedded translations.
func Init() error {
	b := i18n.NewBundle(Supported[0])
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range Supported {
		file := fmt.Sprintf("translations/active.%s.toml", tag)
		if _, err := b.LoadMessageFileFS(translationFS, file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	bundle = b
	return nil
}

// WithLocale adds the locale and a matching localizer to the context.
func WithLocale(ctx context.Context, lang language.Tag) context.Context {
	base, _ := lang.Base()
	locale := base.String()
	ctx = context.WithValue(ctx, localeContextKey{}, locale)
	return context.WithValue(ctx, localizerContextKey{}, i18n.NewLocalizer(bundle, locale))
}

// GetLocale returns the current locale from context.
func GetLocale(ctx context.Context) string {
	if locale, ok := ctx.Value(localeContextKey{}).(string); ok {
		return locale
	}
	return Supported[0].String()
}

// T translates a message by ID. Unknown IDs are returned unchanged.
func T(ctx context.Context, messageID string) string {
	return localize(ctx, &i18n.LocalizeConfig{MessageID: messageID})
}

// MatchLanguage picks the best supported language for an Accept-Language header.
func MatchLanguage(acceptLanguage string) language.Tag {
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	return Supported[idx]
}

func localize(ctx context.Context, cfg *i18n.LocalizeConfig) string {
	localizer := getLocalizer(ctx)
	if localizer == nil {
		return cfg.MessageID
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		return cfg.MessageID
	}
	return msg
}

func getLocalizer(ctx context.Context) *i18n.Localizer {
	if localizer, ok := ctx.Value(localizerContextKey{}).(*i18n.Localizer); ok {
		return localizer
	}
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, Supported[0].String())
}
