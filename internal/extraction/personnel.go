package extraction

import (
	"regexp"
	"strconv"
)

// intRx matches a standalone integer token of 1-5 digits.
var intRx = regexp.MustCompile(`\b(\d{1,5})\b`)

// extractPersonnelCount takes the first standalone integer in the text as
// the headcount. This is a deliberately crude first-number heuristic; the
// moderate confidence reflects that.
func extractPersonnelCount(text string) (*int, float64) {
	raw := intRx.FindString(text)
	if raw == "" {
		return nil, 0.2
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, 0.2
	}
	return &n, 0.6
}
