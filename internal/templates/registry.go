// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package templates renders pages as templ components and resolves view
// names to them.
package templates

import (
	"fmt"

	"codeberg.org/oliverandrich/bootblog/internal/diary"
	"codeberg.org/oliverandrich/bootblog/internal/view"
	"github.com/a-h/templ"
)

// ViewFunc builds the component for a view model.
type ViewFunc func(model view.Model) templ.Component

// Registry maps view names to components. Register all views before
// serving; Resolve is safe for concurrent use afterwards.
type Registry struct {
	views map[string]ViewFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[string]ViewFunc)}
}

// DefaultRegistry returns a registry holding the diary views.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(diary.ViewList, DiaryList)
	r.Register(diary.ViewForm, DiaryForm)
	return r
}

// Register adds or replaces the view with the given name.
func (r *Registry) Register(name string, fn ViewFunc) {
	r.views[name] = fn
}

// Resolve returns the component for the named view.
func (r *Registry) Resolve(name string, model view.Model) (templ.Component, error) {
	fn, ok := r.views[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", view.ErrNotFound, name)
	}
	return fn(model), nil
}
