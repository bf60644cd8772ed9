package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/study-summarizer/internal/types"
)

// maxUploadBytes caps multipart uploads at 32 MiB.
const maxUploadBytes = 32 << 20

var validate = validator.New()

type enqueueRequest struct {
	ID            string `json:"id"`
	SavedLocation string `json:"saved_location" validate:"required"`
}

type enqueueResponse struct {
	JobID         string `json:"job_id"`
	SavedLocation string `json:"saved_location,omitempty"`
}

// handleUploadDocument accepts a multipart upload, stores the file, and
// enqueues a processing job for it.
func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, &BadRequestError{Reason: "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, &BadRequestError{Reason: "missing form file \"file\""})
		return
	}
	defer file.Close() //nolint:errcheck

	ref, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		s.writeError(w, fmt.Errorf("storing upload: %w", err))
		return
	}

	id := s.jobs.Submit(types.Job{SavedLocation: ref})
	s.logger.Info("document uploaded", "job_id", id, "saved_location", ref)
	s.writeJSON(w, http.StatusAccepted, enqueueResponse{JobID: id, SavedLocation: ref})
}

// handleEnqueueJob enqueues a job for a previously stored document.
func (s *Server) handleEnqueueJob(w http.ResponseWriter, r *http.Request) {
	var req enqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &BadRequestError{Reason: "invalid JSON body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.writeError(w, &BadRequestError{Reason: "saved_location is required"})
		return
	}

	id := s.jobs.Submit(types.Job{ID: req.ID, SavedLocation: req.SavedLocation})
	s.writeJSON(w, http.StatusAccepted, enqueueResponse{JobID: id})
}

// handleJobStatus returns the status record for a job.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	record, ok := s.jobs.GetStatus(id)
	if !ok {
		s.writeError(w, &JobNotFoundError{ID: id})
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
