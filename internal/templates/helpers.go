// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import (
	"context"

	"codeberg.org/oliverandrich/bootblog/internal/appcontext"
	"codeberg.org/oliverandrich/bootblog/internal/assets"
	"codeberg.org/oliverandrich/bootblog/internal/i18n"
)

// CSRFToken returns the CSRF token from the context.
func CSRFToken(ctx context.Context) string {
	if token, ok := ctx.Value(appcontext.CSRFToken{}).(string); ok {
		return token
	}
	return ""
}

// T translates a message by ID.
func T(ctx context.Context, messageID string) string {
	return i18n.T(ctx, messageID)
}

// Locale returns the current locale.
func Locale(ctx context.Context) string {
	return i18n.GetLocale(ctx)
}

// CSSPath returns the path to the hashed CSS file.
func CSSPath(ctx context.Context) string {
	if path, ok := ctx.Value(appcontext.CSSPath{}).(string); ok {
		return path
	}
	return assets.CSSPath()
}
