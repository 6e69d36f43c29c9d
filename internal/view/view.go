// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package view defines the result handlers hand to the template layer:
// a view name plus an ordered, immutable view model.
package view

import (
	"errors"
	"maps"
	"slices"
)

// ErrNotFound is returned when no template is registered for a view name.
var ErrNotFound = errors.New("view not found")

// Attr is a single key/value pair of a view model.
type Attr struct {
	Key   string
	Value any
}

// Model is an ordered key/value mapping. The zero value is an empty model.
// A Model is never mutated after construction; With returns a copy.
type Model struct {
	keys   []string
	values map[string]any
}

// NewModel builds a model from the given attributes. A repeated key keeps
// its first position and takes the last value.
func NewModel(attrs ...Attr) Model {
	m := Model{
		keys:   make([]string, 0, len(attrs)),
		values: make(map[string]any, len(attrs)),
	}
	for _, a := range attrs {
		if _, ok := m.values[a.Key]; !ok {
			m.keys = append(m.keys, a.Key)
		}
		m.values[a.Key] = a.Value
	}
	return m
}

// With returns a new model with key set to value.
func (m Model) With(key string, value any) Model {
	out := Model{
		keys:   slices.Clone(m.keys),
		values: maps.Clone(m.values),
	}
	if out.values == nil {
		out.values = make(map[string]any, 1)
	}
	if _, ok := out.values[key]; !ok {
		out.keys = append(out.keys, key)
	}
	out.values[key] = value
	return out
}

// String returns the value under key if it is a string, or "".
func (m Model) String(key string) string {
	if s, ok := m.values[key].(string); ok {
		return s
	}
	return ""
}

// Keys returns the keys in insertion order.
func (m Model) Keys() []string {
	return slices.Clone(m.keys)
}

// Result is what a handler produces: the view to render and its model.
type Result struct {
	Name  string
	Model Model
}

// New creates a Result.
func New(name string, attrs ...Attr) Result {
	return Result{Name: name, Model: NewModel(attrs...)}
}
