// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package htmx detects htmx requests so pages can answer with fragments.
package htmx

import (
	"net/http"
)

// Request headers sent by htmx.
const (
	HeaderRequest        = "HX-Request"
	HeaderBoosted        = "HX-Boosted"
	HeaderCurrentURL     = "HX-Current-URL"
	HeaderHistoryRestore = "HX-History-Restore-Request"
	HeaderTarget         = "HX-Target"
)

// Request contains information about an htmx request.
type Request struct {
	CurrentURL       string
	Target           string
	IsHtmx           bool
	IsBoosted        bool
	IsHistoryRestore bool
}

// ParseRequest extracts htmx information from request headers.
func ParseRequest(r *http.Request) *Request {
	return &Request{
		IsHtmx:           r.Header.Get(HeaderRequest) == "true",
		IsBoosted:        r.Header.Get(HeaderBoosted) == "true",
		CurrentURL:       r.Header.Get(HeaderCurrentURL),
		IsHistoryRestore: r.Header.Get(HeaderHistoryRestore) == "true",
		Target:           r.Header.Get(HeaderTarget),
	}
}

// Partial reports whether the response should be a fragment without the
// page layout. Boosted navigation and history restores need the full page.
func (r *Request) Partial() bool {
	if r == nil {
		return false
	}
	return r.IsHtmx && !r.IsBoosted && !r.IsHistoryRestore
}

// Vary marks a response as depending on the htmx request header so caches
// keep full pages and fragments apart.
func Vary(h http.Header) {
	h.Add("Vary", HeaderRequest)
}
