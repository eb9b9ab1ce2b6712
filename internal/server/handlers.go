package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps one bill upload.
const maxUploadBytes = 15 << 20

// extractionFailedMessage is the single generic message shown for any
// extraction failure, regardless of the underlying cause.
const extractionFailedMessage = "Failed to process the bill. Please ensure it's a valid PDF and try again."

// Health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// Status response
type StatusResponse struct {
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

var serverStartTime = time.Now()

// handleHealth handles the /health endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleStatus handles the /api/status endpoint
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, StatusResponse{
		Version: "v1.0.0",
		Uptime:  time.Since(serverStartTime).String(),
	})
}

// handleAnalyze handles POST /api/analyze: a multipart PDF upload
// producing a full dashboard.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	pdfBytes, fileName, ok := s.readBillUpload(w, r)
	if !ok {
		return
	}

	dash, err := s.analyzer.Analyze(r.Context(), pdfBytes, fileName)
	if err != nil {
		s.log.Error("bill analysis failed", "file", fileName, "error", err)
		s.respondError(w, http.StatusUnprocessableEntity, extractionFailedMessage)
		return
	}

	s.respondJSON(w, http.StatusOK, dash)
}

// handleWeather handles GET /api/weather?address=. The forecaster
// degrades internally, so this always answers 200.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if address == "" {
		s.respondError(w, http.StatusBadRequest, "address query parameter is required")
		return
	}

	s.respondJSON(w, http.StatusOK, s.forecaster.Forecast(r.Context(), address))
}

// handleCreateSession handles POST /api/sessions
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusCreated, s.sessions.Create())
}

// handleGetSession handles GET /api/sessions/{id}
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		s.respondError(w, http.StatusNotFound, "Session not found")
		return
	}
	s.respondJSON(w, http.StatusOK, sess)
}

// handleSessionAnalyze handles POST /api/sessions/{id}/analyze. Each
// upload bumps the session's generation; a result that finished after a
// newer upload began is discarded, answering 409 instead of publishing.
func (s *Server) handleSessionAnalyze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	generation, ok := s.sessions.Begin(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Session not found")
		return
	}

	pdfBytes, fileName, ok := s.readBillUpload(w, r)
	if !ok {
		return
	}

	dash, err := s.analyzer.Analyze(r.Context(), pdfBytes, fileName)
	if err != nil {
		s.log.Error("bill analysis failed", "session", id, "file", fileName, "error", err)
		s.respondError(w, http.StatusUnprocessableEntity, extractionFailedMessage)
		return
	}

	if !s.sessions.Complete(id, generation, dash) {
		s.log.Info("discarding superseded analysis", "session", id, "generation", generation)
		s.respondError(w, http.StatusConflict, "A newer upload superseded this analysis")
		return
	}

	s.respondJSON(w, http.StatusOK, dash)
}

// handleDeleteSession handles DELETE /api/sessions/{id}
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.sessions.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// readBillUpload pulls the "bill" file out of the multipart form and
// checks it parses as a PDF before any model call. On failure it writes
// the error response and reports false.
func (s *Server) readBillUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("bill")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "A PDF bill upload named 'bill' is required")
		return nil, "", false
	}
	defer func() { _ = file.Close() }()

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Failed to read the upload")
		return nil, "", false
	}

	pages, err := s.checkPDF(pdfBytes)
	if err != nil {
		s.log.Warn("rejecting unreadable upload", "file", header.Filename, "error", err)
		s.respondError(w, http.StatusUnprocessableEntity, extractionFailedMessage)
		return nil, "", false
	}

	s.log.Info("bill upload accepted", "file", header.Filename, "pages", pages)
	return pdfBytes, header.Filename, true
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes a JSON error envelope
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"status":  status,
			"message": message,
		},
	})
}
