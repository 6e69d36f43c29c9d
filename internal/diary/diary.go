// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package diary resolves the views of the diary pages.
package diary

import (
	"errors"
	"fmt"

	"codeberg.org/oliverandrich/bootblog/internal/view"
)

// View names understood by the template registry.
const (
	ViewList = "diary/list"
	ViewForm = "diary/form"
)

// Placeholder messages shown on the diary pages.
const (
	ListMessage = "리스트임다"
	FormMessage = "폼임다"
)

// MessageKey is the view model key holding the page message.
const MessageKey = "message"

// ErrUnknownOperation is returned by Resolve for an operation it does not know.
var ErrUnknownOperation = errors.New("unknown diary operation")

// Operation names a diary view request.
type Operation string

const (
	OpList    Operation = "list"
	OpNewForm Operation = "newForm"
)

// Service produces view results for the diary pages. It holds no state and
// is safe for concurrent use.
type Service struct{}

// NewService creates a new Service.
func NewService() *Service {
	return &Service{}
}

// List returns the diary entry list view.
func (s *Service) List() view.Result {
	return view.New(ViewList, view.Attr{Key: MessageKey, Value: ListMessage})
}

// NewForm returns the new entry form view.
func (s *Service) NewForm() view.Result {
	return view.New(ViewForm, view.Attr{Key: MessageKey, Value: FormMessage})
}

// Resolve dispatches op to the matching view operation.
func (s *Service) Resolve(op Operation) (view.Result, error) {
	switch op {
	case OpList:
		return s.List(), nil
	case OpNewForm:
		return s.NewForm(), nil
	default:
		return view.Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}
