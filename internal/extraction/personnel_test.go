package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPersonnelCount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"plain count", "Personnel on site: 42 workers", 42},
		{"first number wins", "18 workers across 3 zones", 18},
		{"single digit", "Crew of 7 on the scaffold", 7},
		{"five digit count", "Man-hours logged: 12345", 12345},
		{"zero is a valid token", "0 absentees today", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, conf := extractPersonnelCount(tt.text)
			require.NotNil(t, value)
			assert.Equal(t, tt.expected, *value)
			assert.Equal(t, 0.6, conf)
		})
	}
}

func TestExtractPersonnelCountAbsent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no digits", "full crew present, no absences"},
		{"six digit token skipped", "serial 123456 logged"},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, conf := extractPersonnelCount(tt.text)
			assert.Nil(t, value)
			assert.Equal(t, 0.2, conf)
		})
	}
}
