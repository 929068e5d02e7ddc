package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/site-scribe/internal/types"
)

// paragraphRx splits text on blank-line boundaries (one or more blank lines).
var paragraphRx = regexp.MustCompile(`\n\s*\n`)

// buckets holds the classifier output. A paragraph may land in several
// buckets; the checks are independent, not mutually exclusive.
type buckets struct {
	Completed []string
	Issues    []types.Issue
	Safety    []string
}

// classifyParagraphs assigns each paragraph to the completed/issue/safety
// buckets by keyword membership, preserving paragraph order and capping each
// bucket at its first MaxFieldEntries matches.
func classifyParagraphs(text string) (buckets, map[string]float64) {
	var b buckets

	for _, para := range paragraphRx.Split(text, -1) {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(para)

		if containsAny(lower, completedKeywords) && len(b.Completed) < types.MaxFieldEntries {
			b.Completed = append(b.Completed, trimmed)
		}
		if containsAny(lower, issueKeywords) && len(b.Issues) < types.MaxFieldEntries {
			kind := issueTypeGeneric
			if strings.Contains(lower, issueTypeDelay) {
				kind = issueTypeDelay
			}
			b.Issues = append(b.Issues, types.Issue{Type: kind, Summary: trimmed})
		}
		if containsAny(lower, safetyKeywords) && len(b.Safety) < types.MaxFieldEntries {
			b.Safety = append(b.Safety, trimmed)
		}
	}

	conf := map[string]float64{
		types.FieldCompletedTasks:     bucketConfidence(len(b.Completed)),
		types.FieldIssues:             bucketConfidence(len(b.Issues)),
		types.FieldSafetyObservations: bucketConfidence(len(b.Safety)),
	}
	return b, conf
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func bucketConfidence(n int) float64 {
	if n > 0 {
		return 0.6
	}
	return 0.2
}
