package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-scribe/internal/types"
)

const validReportJSON = `{
	"date": "2024-03-15",
	"project": null,
	"location": null,
	"subcontractors": ["Apex Steel Ltd"],
	"personnel_count": 12,
	"completed_tasks": ["Poured east wing foundation"],
	"issues": [{"type": "delay", "summary": "Concrete delivery delayed"}],
	"safety_observations": ["Toolbox talk held"],
	"low_confidence": false,
	"confidence": {
		"date": 0.9,
		"personnel_count": 0.6,
		"subcontractors": 0.5,
		"completed_tasks": 0.6,
		"issues": 0.6,
		"safety_observations": 0.6
	}
}`

func TestValidateReport(t *testing.T) {
	err := ValidateReport([]byte(validReportJSON))
	assert.NoError(t, err)
}

func TestValidateReportFromStruct(t *testing.T) {
	date := "2024-03-15"
	rep := &types.Report{
		Date:          &date,
		LowConfidence: true,
		Confidence: map[string]float64{
			types.FieldDate:               0.9,
			types.FieldPersonnelCount:     0.2,
			types.FieldSubcontractors:     0.2,
			types.FieldCompletedTasks:     0.2,
			types.FieldIssues:             0.2,
			types.FieldSafetyObservations: 0.2,
		},
	}
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	assert.NoError(t, ValidateReport(data))
}

func TestValidateReportFailures(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "missing required fields",
			json: `{"date": "2024-03-15"}`,
		},
		{
			name: "negative personnel count",
			json: `{"date": null, "subcontractors": [], "personnel_count": -3,
				"completed_tasks": [], "issues": [], "safety_observations": [],
				"low_confidence": false, "confidence": {"date": 0.2, "personnel_count": 0.2,
				"subcontractors": 0.2, "completed_tasks": 0.2, "issues": 0.2, "safety_observations": 0.2}}`,
		},
		{
			name: "unknown issue type",
			json: `{"date": null, "subcontractors": [], "personnel_count": null,
				"completed_tasks": [], "issues": [{"type": "weather", "summary": "rain"}],
				"safety_observations": [], "low_confidence": false,
				"confidence": {"date": 0.2, "personnel_count": 0.2, "subcontractors": 0.2,
				"completed_tasks": 0.2, "issues": 0.2, "safety_observations": 0.2}}`,
		},
		{
			name: "confidence above one",
			json: `{"date": null, "subcontractors": [], "personnel_count": null,
				"completed_tasks": [], "issues": [], "safety_observations": [],
				"low_confidence": false, "confidence": {"date": 1.5, "personnel_count": 0.2,
				"subcontractors": 0.2, "completed_tasks": 0.2, "issues": 0.2, "safety_observations": 0.2}}`,
		},
		{
			name: "malformed json",
			json: `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReport([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateReport([]byte(`{"date": "2024-03-15"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "validation failed")
}
