package extraction

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-scribe/internal/types"
)

func TestClassifyParagraphsBuckets(t *testing.T) {
	text := strings.Join([]string{
		"Foundation pour completed on the east wing.",
		"Rebar delivery delay pushed the schedule back two days.",
		"Toolbox talk held; all PPE checks passed.",
		"Material shortage reported for drywall.",
	}, "\n\n")

	b, conf := classifyParagraphs(text)

	assert.Equal(t, []string{"Foundation pour completed on the east wing."}, b.Completed)
	require.Len(t, b.Issues, 2)
	assert.Equal(t, types.Issue{Type: "delay", Summary: "Rebar delivery delay pushed the schedule back two days."}, b.Issues[0])
	assert.Equal(t, types.Issue{Type: "issue", Summary: "Material shortage reported for drywall."}, b.Issues[1])
	assert.Equal(t, []string{"Toolbox talk held; all PPE checks passed."}, b.Safety)

	assert.Equal(t, 0.6, conf[types.FieldCompletedTasks])
	assert.Equal(t, 0.6, conf[types.FieldIssues])
	assert.Equal(t, 0.6, conf[types.FieldSafetyObservations])
}

func TestClassifyParagraphsMultiBucket(t *testing.T) {
	// One paragraph matching several keyword sets lands in every matching
	// bucket; the checks are not mutually exclusive.
	text := "Scaffold inspection completed and a safety hazard was flagged near bay 4."

	b, _ := classifyParagraphs(text)

	assert.Equal(t, []string{text}, b.Completed)
	assert.Equal(t, []string{text}, b.Safety)
	assert.Empty(t, b.Issues)
}

func TestClassifyParagraphsCapPreservesOrder(t *testing.T) {
	var paras []string
	for i := 1; i <= 7; i++ {
		paras = append(paras, fmt.Sprintf("Task %d completed on schedule.", i))
	}

	b, _ := classifyParagraphs(strings.Join(paras, "\n\n"))

	require.Len(t, b.Completed, 5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("Task %d completed on schedule.", i+1), b.Completed[i])
	}
}

func TestClassifyParagraphsIssueTyping(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"delay keyword wins", "Concrete delivery delay blocked the pour.", "delay"},
		{"generic issue", "Pump problem in the basement.", "issue"},
		{"uppercase delay", "DELAY on steel erection.", "delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := classifyParagraphs(tt.text)
			require.Len(t, b.Issues, 1)
			assert.Equal(t, tt.expected, b.Issues[0].Type)
		})
	}
}

func TestClassifyParagraphsNoMatches(t *testing.T) {
	b, conf := classifyParagraphs("Weather was clear.\n\nCrane idle most of the morning.")

	assert.Empty(t, b.Completed)
	assert.Empty(t, b.Issues)
	assert.Empty(t, b.Safety)
	assert.Equal(t, 0.2, conf[types.FieldCompletedTasks])
	assert.Equal(t, 0.2, conf[types.FieldIssues])
	assert.Equal(t, 0.2, conf[types.FieldSafetyObservations])
}
