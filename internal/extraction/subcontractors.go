package extraction

import (
	"strings"

	"github.com/jonathan/site-scribe/internal/types"
)

const (
	minSubcontractorLine = 3
	maxSubcontractorLine = 80
)

// extractSubcontractors keeps lines mentioning "contractor" (which also
// covers "subcontractor") whose trimmed length is plausible for a company
// name or crew entry, preserving order of appearance.
func extractSubcontractors(text string) ([]string, float64) {
	var subs []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), "contractor") {
			continue
		}
		piece := strings.TrimSpace(line)
		if len(piece) < minSubcontractorLine || len(piece) > maxSubcontractorLine {
			continue
		}
		subs = append(subs, piece)
		if len(subs) == types.MaxFieldEntries {
			break
		}
	}

	if len(subs) == 0 {
		return nil, 0.2
	}
	return subs, 0.5
}
