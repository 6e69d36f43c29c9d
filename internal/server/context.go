// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"context"

	"codeberg.org/oliverandrich/bootblog/internal/appcontext"
	"codeberg.org/oliverandrich/bootblog/internal/htmx"
	"github.com/labstack/echo/v4"
)

// customContext wraps the Echo context with appcontext.Context and copies
// the asset paths and fragment flag into the request context for templates.
func customContext(assets *appcontext.Assets) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hx := htmx.ParseRequest(c.Request())

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, appcontext.CSSPath{}, assets.CSSPath)
			ctx = appcontext.WithPartial(ctx, hx.Partial())
			c.SetRequest(c.Request().WithContext(ctx))

			cc := &appcontext.Context{
				Context: c,
				Htmx:    hx,
				Assets:  assets,
			}
			return next(cc)
		}
	}
}
