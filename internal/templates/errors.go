// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package templates

import "net/http"

// ErrorView is the view name of error pages.
const ErrorView = "error"

// errorMessages maps status codes to translated messages. Codes not listed
// fall back to the generic internal error text.
var errorMessages = map[int]string{
	http.StatusBadRequest:       "error_bad_request",
	http.StatusForbidden:        "error_forbidden",
	http.StatusNotFound:         "error_not_found",
	http.StatusMethodNotAllowed: "error_method_not_allowed",
}

func errorMessageID(code int) string {
	if id, ok := errorMessages[code]; ok {
		return id
	}
	return "error_internal"
}

func errorTitle(code int) string {
	if title := http.StatusText(code); title != "" {
		return title
	}
	return "Error"
}
