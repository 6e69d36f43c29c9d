// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package appcontext provides the custom Echo context and context keys.
package appcontext

import (
	"context"

	"codeberg.org/oliverandrich/bootblog/internal/htmx"
	"github.com/labstack/echo/v4"
)

// Context keys for storing values in context.Context.
type (
	// CSRFToken is the context key for the CSRF token.
	CSRFToken struct{}
	// CSSPath is the context key for the CSS path.
	CSSPath struct{}
	// Partial is the context key marking fragment rendering.
	Partial struct{}
)

// Assets holds paths to static assets.
type Assets struct {
	CSSPath string
}

// Context is a custom Echo context with typed fields for htmx and assets.
type Context struct {
	echo.Context
	Htmx   *htmx.Request
	Assets *Assets
}

// IsPartial reports whether the current request wants a fragment.
func (c *Context) IsPartial() bool {
	return c.Htmx.Partial()
}

// From returns the custom context if c is one.
func From(c echo.Context) (*Context, bool) {
	cc, ok := c.(*Context)
	return cc, ok
}

// WithPartial marks ctx for fragment rendering.
func WithPartial(ctx context.Context, partial bool) context.Context {
	return context.WithValue(ctx, Partial{}, partial)
}

// IsPartial reports whether ctx was marked for fragment rendering.
func IsPartial(ctx context.Context) bool {
	partial, _ := ctx.Value(Partial{}).(bool)
	return partial
}
