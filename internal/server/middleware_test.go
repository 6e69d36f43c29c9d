// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/bootblog/internal/appcontext"
	"codeberg.org/oliverandrich/bootblog/internal/config"
	"codeberg.org/oliverandrich/bootblog/internal/i18n"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHashedAsset(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/static/css/styles.d073ff63.css", true},
		{"/static/js/app.abc12345.js", true},
		{"/static/css/styles.css", false},
		{"/static/css/styles.DEADBEEF.css", false},
		{"/static/css/styles.abcd123.css", false},
		{"/static/css/styles.abcd12345.css", false},
		{"/static/css/styles.ghijklmn.css", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHashedAsset(tt.path))
		})
	}
}

func TestStaticCacheHeaders(t *testing.T) {
	e := echo.New()
	e.Use(staticCacheHeaders())
	e.GET("/static/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/diary", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"hashed asset", "/static/css/styles.d073ff63.css", "public, max-age=31536000, immutable"},
		{"plain asset", "/static/css/styles.css", "no-cache"},
		{"page", "/diary", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get("Cache-Control"))
		})
	}
}

func TestI18nMiddleware(t *testing.T) {
	require.NoError(t, i18n.Init())

	e := echo.New()
	e.Use(i18nMiddleware())

	var locale string
	e.GET("/", func(c echo.Context) error {
		locale = i18n.GetLocale(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	tests := []struct {
		header   string
		expected string
	}{
		{"en-US,en;q=0.9", "en"},
		{"ko-KR", "ko"},
		{"de-DE", "ko"},
		{"", "ko"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, locale)
			assert.Equal(t, tt.expected, rec.Header().Get("Content-Language"))
		})
	}
}

func TestCsrfMiddleware_CookieSecure(t *testing.T) {
	tests := []struct {
		baseURL string
		secure  bool
	}{
		{"http://localhost:8080", false},
		{"https://example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.baseURL, func(t *testing.T) {
			cfg := &config.Config{Server: config.ServerConfig{BaseURL: tt.baseURL}}

			e := echo.New()
			e.Use(csrfMiddleware(cfg))
			e.GET("/", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "_csrf", cookies[0].Name)
			assert.Equal(t, tt.secure, cookies[0].Secure)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestCsrfMiddleware_RejectsPostWithoutToken(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{BaseURL: "http://localhost:8080"}}

	e := echo.New()
	e.Use(csrfMiddleware(cfg))
	e.POST("/diary", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/diary", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestCsrfToContext(t *testing.T) {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("token") != "" {
				c.Set("csrf", c.QueryParam("token"))
			}
			return next(c)
		}
	})
	e.Use(csrfToContext())

	var token any
	e.GET("/", func(c echo.Context) error {
		token = c.Request().Context().Value(appcontext.CSRFToken{})
		return c.NoContent(http.StatusOK)
	})

	t.Run("without token", func(t *testing.T) {
		token = nil
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Nil(t, token)
	})

	t.Run("with token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?token=test-token", nil))

		assert.Equal(t, "test-token", token)
	})
}

func TestCustomContext(t *testing.T) {
	assets := &appcontext.Assets{CSSPath: "/static/css/styles.abc12345.css"}

	tests := []struct {
		name      string
		headers   map[string]string
		isHtmx    bool
		isPartial bool
	}{
		{"plain request", nil, false, false},
		{"htmx request", map[string]string{"HX-Request": "true", "HX-Target": "content"}, true, true},
		{"boosted request", map[string]string{"HX-Request": "true", "HX-Boosted": "true"}, true, false},
		{"history restore", map[string]string{"HX-Request": "true", "HX-History-Restore-Request": "true"}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/diary", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			var captured *appcontext.Context
			err := customContext(assets)(func(c echo.Context) error {
				cc, ok := appcontext.From(c)
				require.True(t, ok)
				captured = cc
				return nil
			})(c)

			require.NoError(t, err)
			require.NotNil(t, captured)
			assert.Same(t, assets, captured.Assets)
			assert.Equal(t, tt.isHtmx, captured.Htmx.IsHtmx)
			assert.Equal(t, tt.isPartial, captured.IsPartial())

			ctx := captured.Request().Context()
			assert.Equal(t, assets.CSSPath, ctx.Value(appcontext.CSSPath{}))
			assert.Equal(t, tt.isPartial, appcontext.IsPartial(ctx))
		})
	}
}
