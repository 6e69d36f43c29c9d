// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package assets_test

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"codeberg.org/oliverandrich/bootblog/internal/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hashedCSS = regexp.MustCompile(`^/static/css/styles\.[0-9a-f]{8}\.css$`)

func TestCSSPath_IsHashed(t *testing.T) {
	assert.Regexp(t, hashedCSS, assets.CSSPath())
}

func TestURL_Unknown(t *testing.T) {
	assert.Equal(t, "/static/img/missing.png", assets.URL("img/missing.png"))
}

func TestFileServer_HashedName(t *testing.T) {
	handler := http.StripPrefix("/static/", assets.FileServer())

	req := httptest.NewRequest(http.MethodGet, assets.CSSPath(), nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), "--accent")
}

func TestFileServer_PlainName(t *testing.T) {
	handler := http.StripPrefix("/static/", assets.FileServer())

	req := httptest.NewRequest(http.MethodGet, "/static/css/styles.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFileServer_NotFound(t *testing.T) {
	handler := http.StripPrefix("/static/", assets.FileServer())

	req := httptest.NewRequest(http.MethodGet, "/static/css/nope.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
