// Package extraction turns acquired report text into a structured Report
// with per-field confidence scores. Every extractor is stateless and
// deterministic; none of them fails — a field that cannot be extracted
// degrades to an absent value with low confidence instead.
package extraction

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/site-scribe/internal/types"
)

// Engine runs the field extractors over acquired text and assembles a Report.
// It holds no mutable state and is safe for concurrent use.
type Engine struct{}

// NewEngine creates an extraction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Extract applies the independent field extractors to the text and
// aggregates their confidences into the low-confidence flag. The extractors
// share no state, so they run concurrently; the result does not depend on
// their ordering.
func (e *Engine) Extract(ctx context.Context, text string) (*types.Report, error) {
	var (
		date       *string
		dateConf   float64
		count      *int
		countConf  float64
		subs       []string
		subsConf   float64
		paraBucket buckets
		paraConf   map[string]float64
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		date, dateConf = extractDate(text)
		return nil
	})
	g.Go(func() error {
		count, countConf = extractPersonnelCount(text)
		return nil
	})
	g.Go(func() error {
		subs, subsConf = extractSubcontractors(text)
		return nil
	})
	g.Go(func() error {
		paraBucket, paraConf = classifyParagraphs(text)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	confidence := map[string]float64{
		types.FieldDate:               dateConf,
		types.FieldPersonnelCount:     countConf,
		types.FieldSubcontractors:     subsConf,
		types.FieldCompletedTasks:     paraConf[types.FieldCompletedTasks],
		types.FieldIssues:             paraConf[types.FieldIssues],
		types.FieldSafetyObservations: paraConf[types.FieldSafetyObservations],
	}

	return &types.Report{
		Date:               date,
		Subcontractors:     subs,
		PersonnelCount:     count,
		CompletedTasks:     paraBucket.Completed,
		Issues:             paraBucket.Issues,
		SafetyObservations: paraBucket.Safety,
		LowConfidence:      AggregateLowConfidence(confidence),
		Confidence:         confidence,
	}, nil
}
