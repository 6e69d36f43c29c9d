// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"fmt"
	"log/slog"

	"codeberg.org/oliverandrich/bootblog/internal/htmx"
	"codeberg.org/oliverandrich/bootblog/internal/view"
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render renders a templ component with the given status code.
func Render(c echo.Context, statusCode int, component templ.Component) error {
	buf := templ.GetBuffer()
	defer templ.ReleaseBuffer(buf)

	if err := component.Render(c.Request().Context(), buf); err != nil {
		return err
	}

	htmx.Vary(c.Response().Header())
	return c.HTML(statusCode, buf.String())
}

// RenderView resolves the view named in result and renders it with the
// result's model. An unresolvable view is an internal error.
func (h *Handlers) RenderView(c echo.Context, statusCode int, result view.Result) error {
	component, err := h.views.Resolve(result.Name, result.Model)
	if err != nil {
		return fmt.Errorf("failed to resolve view: %w", err)
	}

	slog.DebugContext(c.Request().Context(), "render view",
		"view", result.Name,
		"keys", result.Model.Keys(),
	)

	return Render(c, statusCode, component)
}
