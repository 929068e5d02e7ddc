// Package export persists extraction reports as durable, identifier-addressed
// CSV snapshots. Every export gets a fresh random identifier, so artifacts
// are never overwritten and concurrent exports never contend.
package export

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/site-scribe/internal/types"
)

// URLPrefix is the public locator prefix for snapshot artifacts.
const URLPrefix = "/exports/scribe/"

// Flattening separators for list-valued fields. Subcontractor entries are
// short name-like strings; task/issue/safety entries are whole paragraphs.
const (
	subcontractorSep = "; "
	paragraphSep     = " | "
)

// WriteError indicates a snapshot could not be written. The extraction
// itself is still valid; only the export reference is missing.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("export snapshot write failed: %s: %v", e.Path, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Exporter writes snapshot artifacts into a single directory, creating it
// on demand.
type Exporter struct {
	dir string
}

// NewExporter creates an Exporter rooted at dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Dir returns the directory snapshots are written to.
func (e *Exporter) Dir() string {
	return e.dir
}

// Write persists the report as a two-column CSV snapshot under a fresh
// random identifier and returns the public locator. It never reuses an
// identifier, so exporting the same report twice yields two artifacts.
func (e *Exporter) Write(rep *types.Report) (string, error) {
	name := snapshotName()
	path := filepath.Join(e.dir, name)

	// MkdirAll is idempotent, which keeps concurrent first-use safe.
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}

	w := csv.NewWriter(f)
	rows := [][]string{
		{"field", "value"},
		{types.FieldDate, stringOrEmpty(rep.Date)},
		{types.FieldPersonnelCount, intOrEmpty(rep.PersonnelCount)},
		{types.FieldSubcontractors, strings.Join(rep.Subcontractors, subcontractorSep)},
		{types.FieldCompletedTasks, strings.Join(rep.CompletedTasks, paragraphSep)},
		{types.FieldIssues, joinIssues(rep.Issues)},
		{types.FieldSafetyObservations, strings.Join(rep.SafetyObservations, paragraphSep)},
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return "", &WriteError{Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return "", &WriteError{Path: path, Cause: err}
	}

	return URLPrefix + name, nil
}

// snapshotName builds a random 32-hex-character artifact name. Identifiers
// are opaque and not derived from content.
func snapshotName() string {
	id := uuid.New()
	return hex.EncodeToString(id[:]) + ".csv"
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func joinIssues(issues []types.Issue) string {
	summaries := make([]string, 0, len(issues))
	for _, i := range issues {
		summaries = append(summaries, i.Summary)
	}
	return strings.Join(summaries, paragraphSep)
}
