// Package types defines the core data structures shared across the extraction pipeline.
package types

// Extracted field names, used as keys in the Confidence map and as row
// labels in the snapshot artifact.
const (
	FieldDate               = "date"
	FieldPersonnelCount     = "personnel_count"
	FieldSubcontractors     = "subcontractors"
	FieldCompletedTasks     = "completed_tasks"
	FieldIssues             = "issues"
	FieldSafetyObservations = "safety_observations"
)

// FieldNames lists every extracted field in snapshot row order.
var FieldNames = []string{
	FieldDate,
	FieldPersonnelCount,
	FieldSubcontractors,
	FieldCompletedTasks,
	FieldIssues,
	FieldSafetyObservations,
}

// MaxFieldEntries caps every list-valued field.
const MaxFieldEntries = 5

// LowConfidenceThreshold is the per-field trust floor. A report is flagged
// low-confidence when any field's confidence is at or below this value.
const LowConfidenceThreshold = 0.25

// Issue is a classified problem paragraph from a site report.
type Issue struct {
	Type    string `json:"type"` // "delay" or "issue"
	Summary string `json:"summary"`
}

// Report is the structured record extracted from one site report.
// It is immutable after confidence aggregation, except for ExportCSVURL
// which is attached after a successful snapshot export.
type Report struct {
	Date               *string            `json:"date"`
	Project            *string            `json:"project"`  // reserved, always null
	Location           *string            `json:"location"` // reserved, always null
	Subcontractors     []string           `json:"subcontractors"`
	PersonnelCount     *int               `json:"personnel_count"`
	CompletedTasks     []string           `json:"completed_tasks"`
	Issues             []Issue            `json:"issues"`
	SafetyObservations []string           `json:"safety_observations"`
	LowConfidence      bool               `json:"low_confidence"`
	Confidence         map[string]float64 `json:"confidence"`
	ExportCSVURL       *string            `json:"export_csv_url"`
}

// HasCompleteConfidence reports whether every extracted field name is
// present in the confidence map exactly once.
func (r *Report) HasCompleteConfidence() bool {
	if len(r.Confidence) != len(FieldNames) {
		return false
	}
	for _, name := range FieldNames {
		if _, ok := r.Confidence[name]; !ok {
			return false
		}
	}
	return true
}
