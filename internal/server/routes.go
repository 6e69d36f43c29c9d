// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"net/http"

	"codeberg.org/oliverandrich/bootblog/internal/assets"
	"codeberg.org/oliverandrich/bootblog/internal/handlers"
	"github.com/labstack/echo/v4"
)

var (
	get     = []string{http.MethodGet}
	getHead = []string{http.MethodGet, http.MethodHead}
)

// route is one entry of the routing table.
type route struct {
	methods []string
	path    string
	name    string
	handler echo.HandlerFunc
}

// routes returns the routing table of the application. Pages also answer
// HEAD.
func routes(h *handlers.Handlers) []route {
	static := echo.WrapHandler(http.StripPrefix("/static/", assets.FileServer()))

	return []route{
		{get, "/static/*", "static", static},
		{get, "/health", "health", h.Health},
		{getHead, "/", "home", h.Home},
		{getHead, "/diary", "diary.list", h.DiaryList},
		{getHead, "/diary/new", "diary.new", h.DiaryNew},
	}
}

// registerRoutes adds every entry of table to e.
func registerRoutes(e *echo.Echo, table []route) {
	for _, r := range table {
		for _, rt := range e.Match(r.methods, r.path, r.handler) {
			rt.Name = r.name
		}
	}
}
