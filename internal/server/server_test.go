// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/bootblog/internal/assets"
	"codeberg.org/oliverandrich/bootblog/internal/config"
	"codeberg.org/oliverandrich/bootblog/internal/diary"
	"codeberg.org/oliverandrich/bootblog/internal/handlers"
	"codeberg.org/oliverandrich/bootblog/internal/templates"
	"codeberg.org/oliverandrich/bootblog/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:        "localhost",
			Port:        8080,
			BaseURL:     "http://localhost:8080",
			MaxBodySize: 1,
		},
		Log: config.LogConfig{Level: "error", Format: "text"},
	}
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	testutil.InitI18n(t)
	return New(testConfig(), noop.NewTracerProvider())
}

func serve(e *echo.Echo, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_DiaryList(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "ko", rec.Header().Get("Content-Language"))
	body := rec.Body.String()
	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, `data-view="diary/list"`)
	assert.Contains(t, body, diary.ListMessage)
	assert.Contains(t, body, assets.CSSPath())
}

func TestServer_DiaryNew(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary/new", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-view="diary/form"`)
	assert.Contains(t, body, diary.FormMessage)
	assert.NotContains(t, body, diary.ListMessage)
	assert.Contains(t, body, `name="csrf_token"`)
}

func TestServer_RepeatedRequestsAreIdentical(t *testing.T) {
	e := newTestServer(t)

	first := serve(e, http.MethodGet, "/diary", nil)
	second := serve(e, http.MethodGet, "/diary", nil)

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestServer_HeadDiaryPages(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/diary", "/diary/new"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(e, http.MethodHead, path, nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
		})
	}
}

func TestServer_PostWithoutCSRFToken(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodPost, "/diary", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Bad Request</h1>")
	assert.Contains(t, rec.Body.String(), "잘못된 요청입니다.")
}

func TestServer_HtmxFragment(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary/new", map[string]string{"HX-Request": "true"})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "<!doctype html>")
	assert.Contains(t, body, `data-view="diary/form"`)
	assert.Contains(t, rec.Header().Values("Vary"), "HX-Request")
}

func TestServer_English(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary", map[string]string{"Accept-Language": "en-US"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	assert.Contains(t, rec.Body.String(), `<html lang="en">`)
	assert.Contains(t, rec.Body.String(), diary.ListMessage)
}

func TestServer_Redirects(t *testing.T) {
	e := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		code     int
		location string
	}{
		{"home", "/", http.StatusSeeOther, "/diary"},
		{"trailing slash list", "/diary/", http.StatusMovedPermanently, "/diary"},
		{"trailing slash form", "/diary/new/", http.StatusMovedPermanently, "/diary/new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestServer_Health(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestServer_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "요청하신 페이지를 찾을 수 없습니다.")
	assert.Contains(t, rec.Body.String(), `data-view="error"`)
}

func TestServer_StaticAsset(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, assets.CSSPath(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "--accent")
}

func TestServer_RequestID(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary", nil)

	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServer_SecurityHeaders(t *testing.T) {
	e := newTestServer(t)

	rec := serve(e, http.MethodGet, "/diary", nil)

	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
}

func TestServer_Tracing(t *testing.T) {
	testutil.InitI18n(t)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	e := New(testConfig(), tp)
	rec := serve(e, http.MethodGet, "/diary/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /diary/new", spans[0].Name())
}

func TestRoutes(t *testing.T) {
	h := handlers.New(diary.NewService(), templates.DefaultRegistry())
	table := routes(h)

	names := make(map[string]route, len(table))
	for _, r := range table {
		assert.Contains(t, r.methods, http.MethodGet, r.path)
		assert.NotNil(t, r.handler, r.path)
		names[r.name] = r
	}

	assert.Equal(t, "/diary", names["diary.list"].path)
	assert.Equal(t, "/diary/new", names["diary.new"].path)
	assert.Equal(t, "/", names["home"].path)
	assert.Equal(t, "/health", names["health"].path)
	assert.Contains(t, names["diary.list"].methods, http.MethodHead)
	assert.Contains(t, names["diary.new"].methods, http.MethodHead)
}

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	h := handlers.New(diary.NewService(), templates.DefaultRegistry())
	registerRoutes(e, routes(h))

	assert.Equal(t, "/diary", e.Reverse("diary.list"))
	assert.Equal(t, "/diary/new", e.Reverse("diary.new"))
}
