package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expected     string
		expectedConf float64
	}{
		{"ISO date kept as-is", "Daily report for 2024-03-15 at the north site", "2024-03-15", 0.9},
		{"slash ISO date normalized", "Report 2024/03/15", "2024-03-15", 0.9},
		{"day-month-year disambiguated", "Report dated 15/03/2024", "2024-03-15", 0.9},
		{"day-month-year with dashes", "Report dated 15-03-2024", "2024-03-15", 0.9},
		{"single-digit month and day", "Logged on 2024-3-5", "2024-03-05", 0.9},
		{"first match wins", "2024-01-02 then later 2024-05-06", "2024-01-02", 0.9},
		{"invalid calendar date falls back to raw", "Shift on 31/02/2024 maybe", "31/02/2024", 0.9},
		{"date embedded in sentence", "crew of twelve, 11/11/2024, all present", "2024-11-11", 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, conf := extractDate(tt.text)
			require.NotNil(t, value)
			assert.Equal(t, tt.expected, *value)
			assert.Equal(t, tt.expectedConf, conf)
		})
	}
}

func TestExtractDateAbsent(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no digits at all", "crew worked on the east wing"},
		{"year outside the 2000s", "archive entry 1999-03-15"},
		{"month out of range", "token 2024-13-05 is not a date"},
		{"empty text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, conf := extractDate(tt.text)
			assert.Nil(t, value)
			assert.Equal(t, 0.2, conf)
		})
	}
}
