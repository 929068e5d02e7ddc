package extraction

import "github.com/jonathan/site-scribe/internal/types"

// AggregateLowConfidence applies the conservative any-one-weak-field rule:
// the report is flagged when any field's confidence is at or below the
// threshold, regardless of how strong the others are.
func AggregateLowConfidence(confidence map[string]float64) bool {
	for _, v := range confidence {
		if v <= types.LowConfidenceThreshold {
			return true
		}
	}
	return false
}
