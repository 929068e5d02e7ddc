package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/site-scribe/internal/acquire"
	"github.com/jonathan/site-scribe/internal/export"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "NoTextError",
			err:      &acquire.NoTextError{},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped NoTextError",
			err:      fmt.Errorf("acquire: %w", &acquire.NoTextError{}),
			expected: http.StatusBadRequest,
		},
		{
			name:     "WriteError",
			err:      &export.WriteError{Path: "exports/scribe/x.csv", Cause: errors.New("disk full")},
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unknown error",
			err:      errors.New("something broke"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
