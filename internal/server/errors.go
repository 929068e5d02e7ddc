package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/site-scribe/internal/acquire"
	"github.com/jonathan/site-scribe/internal/export"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Acquisition failures are the caller's problem; export failures are ours.
func HTTPStatus(err error) int {
	var noText *acquire.NoTextError
	if errors.As(err, &noText) {
		return http.StatusBadRequest
	}
	var writeErr *export.WriteError
	if errors.As(err, &writeErr) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
