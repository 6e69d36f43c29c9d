// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"fmt"
	"net/http"

	"codeberg.org/oliverandrich/bootblog/internal/diary"
	"codeberg.org/oliverandrich/bootblog/internal/templates"
	"github.com/labstack/echo/v4"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	diary *diary.Service
	views *templates.Registry
}

// New creates a new Handlers instance.
func New(diaryService *diary.Service, views *templates.Registry) *Handlers {
	return &Handlers{diary: diaryService, views: views}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Home sends visitors to the diary list.
func (h *Handlers) Home(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/diary")
}

// DiaryList renders the diary entry list.
func (h *Handlers) DiaryList(c echo.Context) error {
	return h.view(c, diary.OpList)
}

// DiaryNew renders the new entry form.
func (h *Handlers) DiaryNew(c echo.Context) error {
	return h.view(c, diary.OpNewForm)
}

// view dispatches op to the diary service and renders the resulting view.
func (h *Handlers) view(c echo.Context, op diary.Operation) error {
	result, err := h.diary.Resolve(op)
	if err != nil {
		return fmt.Errorf("failed to resolve diary operation: %w", err)
	}
	return h.RenderView(c, http.StatusOK, result)
}
