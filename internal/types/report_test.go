package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportJSONFieldNames(t *testing.T) {
	date := "2024-03-15"
	count := 12
	rep := &Report{
		Date:           &date,
		PersonnelCount: &count,
		Subcontractors: []string{"Apex Steel Ltd"},
		Issues:         []Issue{{Type: "delay", Summary: "Concrete delayed"}},
		LowConfidence:  true,
		Confidence:     map[string]float64{FieldDate: 0.9},
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))

	for _, key := range []string{
		"date", "project", "location", "subcontractors", "personnel_count",
		"completed_tasks", "issues", "safety_observations", "low_confidence",
		"confidence", "export_csv_url",
	} {
		assert.Contains(t, m, key)
	}
}

func TestReportJSONNullsWhenEmpty(t *testing.T) {
	data, err := json.Marshal(&Report{})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	assert.Nil(t, m["date"])
	assert.Nil(t, m["project"])
	assert.Nil(t, m["location"])
	assert.Nil(t, m["personnel_count"])
	assert.Nil(t, m["export_csv_url"])
	assert.Equal(t, false, m["low_confidence"])
}

func TestReportRoundTrip(t *testing.T) {
	date := "2024-03-15"
	rep := &Report{
		Date:   &date,
		Issues: []Issue{{Type: "issue", Summary: "Crane inspection overdue"}},
		Confidence: map[string]float64{
			FieldDate:   0.9,
			FieldIssues: 0.6,
		},
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, rep.Date, decoded.Date)
	assert.Equal(t, rep.Issues, decoded.Issues)
	assert.Equal(t, rep.Confidence, decoded.Confidence)
}

func TestHasCompleteConfidence(t *testing.T) {
	full := map[string]float64{}
	for _, name := range FieldNames {
		full[name] = 0.5
	}

	tests := []struct {
		name       string
		confidence map[string]float64
		expected   bool
	}{
		{"all fields present", full, true},
		{"missing field", map[string]float64{FieldDate: 0.9}, false},
		{"empty", map[string]float64{}, false},
		{"nil", nil, false},
		{
			"wrong key",
			map[string]float64{
				FieldDate: 0.9, FieldPersonnelCount: 0.6, FieldSubcontractors: 0.5,
				FieldCompletedTasks: 0.6, FieldIssues: 0.6, "weather": 0.6,
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := &Report{Confidence: tt.confidence}
			assert.Equal(t, tt.expected, rep.HasCompleteConfidence())
		})
	}
}
