// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"codeberg.org/oliverandrich/bootblog/internal/diary"
	"github.com/labstack/echo/v4"
)

// View exposes the diary dispatch to the external test package.
func (h *Handlers) View(c echo.Context, op diary.Operation) error {
	return h.view(c, op)
}
