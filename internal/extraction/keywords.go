package extraction

// Classifier keyword sets. Kept as data rather than code so they can be
// swapped for another locale or a trained classifier without touching the
// classification logic.
var (
	completedKeywords = []string{"completed", "finished", "achieved", "done"}
	issueKeywords     = []string{"delay", "blocked", "issue", "problem", "shortage"}
	safetyKeywords    = []string{"safety", "ppe", "incident", "hazard", "near miss", "near-miss"}
)

// issueTypeDelay marks issues whose paragraph mentions a delay; everything
// else is a generic issue.
const (
	issueTypeDelay   = "delay"
	issueTypeGeneric = "issue"
)
