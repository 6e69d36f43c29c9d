// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"io"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/bootblog/internal/appcontext"
	"codeberg.org/oliverandrich/bootblog/internal/htmx"
	"codeberg.org/oliverandrich/bootblog/internal/i18n"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// InitI18n loads the translation bundle for tests that render pages.
func InitI18n(t *testing.T) {
	t.Helper()
	require.NoError(t, i18n.Init())
}

// NewEchoContext creates an Echo context for handler tests with the given
// locale attached to the request context.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader, lang language.Tag) (echo.Context, *httptest.ResponseRecorder) {
	return NewEchoContextWithHeaders(e, method, path, body, lang, nil)
}

// NewEchoContextWithHeaders creates an Echo context with custom headers. The
// context is wrapped in an appcontext.Context like the server middleware does.
func NewEchoContextWithHeaders(e *echo.Echo, method, path string, body io.Reader, lang language.Tag, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hx := htmx.ParseRequest(req)
	ctx := i18n.WithLocale(req.Context(), lang)
	ctx = appcontext.WithPartial(ctx, hx.Partial())
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	c := &appcontext.Context{
		Context: e.NewContext(req, rec),
		Htmx:    hx,
		Assets:  &appcontext.Assets{},
	}
	return c, rec
}
