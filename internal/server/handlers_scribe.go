package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// snapshotNameRx matches the artifact names the exporter generates: 32 hex
// characters plus the csv extension. Anything else is rejected before it
// can touch the filesystem.
var snapshotNameRx = regexp.MustCompile(`^[0-9a-f]{32}\.csv$`)

// handleExtract runs the full pipeline: acquire text, extract fields,
// export a snapshot, attach the locator. Acquisition and export failures
// are both terminal for the request; no partial results are returned.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// An extraction fault must never crash the serving process; report it
	// as a generic failure with the cause attached.
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("extraction panic: %v", rec)
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Extraction failed: %v", rec))
		}
	}()

	text, source, err := s.adapter.FromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Provide a document or raw text.")
		return
	}

	report, err := s.engine.Extract(r.Context(), text)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Extraction failed: %v", err))
		return
	}

	ref, err := s.exporter.Write(report)
	if err != nil {
		log.Printf("snapshot export failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), fmt.Sprintf("Extraction failed: %v", err))
		return
	}
	report.ExportCSVURL = &ref

	// History is best-effort: a missing or failing database never affects
	// the extraction result.
	if s.db != nil {
		if _, err := s.db.RecordRun(r.Context(), string(source), report); err != nil {
			log.Printf("failed to record extraction run: %v", err)
		}
	}

	log.Printf("[scribe] source=%s low_confidence=%t export=%s", source, report.LowConfidence, ref)
	s.jsonResponse(w, http.StatusOK, report)
}

// handleExportDownload serves a snapshot artifact by name.
func (s *Server) handleExportDownload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !snapshotNameRx.MatchString(name) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid export name")
		return
	}

	path := filepath.Join(s.exporter.Dir(), name)
	if _, err := os.Stat(path); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Export not found")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

// handleListRuns returns recent extraction history, newest first. Requires
// a configured database.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "Extraction history is not enabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	runs, err := s.db.ListRecentRuns(r.Context(), limit)
	if err != nil {
		log.Printf("failed to list runs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list runs")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}
