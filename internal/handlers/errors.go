// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"codeberg.org/oliverandrich/bootblog/internal/templates"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders the error page for errors returned by handlers and
// middleware. Details of internal errors are logged, never shown.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		if noContentErr := c.NoContent(code); noContentErr != nil {
			slog.Error("failed to write error response", "error", noContentErr)
		}
		return
	}

	if renderErr := Render(c, code, templates.ErrorPage(code)); renderErr != nil {
		slog.Error("failed to render error page", "code", code, "error", renderErr)
		_ = c.String(code, http.StatusText(code))
	}
}
