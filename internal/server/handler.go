package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ryannerby/jobnest/internal/ai"
	"github.com/ryannerby/jobnest/internal/apperror"
	"github.com/ryannerby/jobnest/internal/job"
	"github.com/ryannerby/jobnest/internal/linkedin"
)

type handler struct {
	jobSvc    *job.Service
	extractor ai.Extractor
	generator *ai.Generator
	search    *linkedin.Provider
}

func (h *handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("JobNest backend is running!"))
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobSvc.List(r.Context())
	if err != nil {
		h.writeErr(w, err)
		return
	}
	if jobs == nil {
		jobs = []job.Job{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *handler) createJob(w http.ResponseWriter, r *http.Request) {
	var j job.Job
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	j.ID = 0 // server-assigned

	created, err := h.jobSvc.Create(r.Context(), &j)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) updateJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var j job.Job
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	j.ID = id

	updated, err := h.jobSvc.Update(r.Context(), &j)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := h.jobSvc.Delete(r.Context(), id); err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) generateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req ai.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if appErr := req.Validate(); appErr != nil {
		writeValidationError(w, appErr.Messages())
		return
	}

	letter, err := h.generator.CoverLetter(r.Context(), req)
	if err != nil {
		slog.Error("cover letter generation failed", "error", err, "company", req.Company)
		writeError(w, http.StatusInternalServerError, "Failed to generate cover letter. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"coverLetter": letter})
}

func (h *handler) tailorResume(w http.ResponseWriter, r *http.Request) {
	var req ai.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if appErr := req.Validate(); appErr != nil {
		writeValidationError(w, appErr.Messages())
		return
	}

	resume, err := h.generator.TailorResume(r.Context(), req)
	if err != nil {
		slog.Error("resume tailoring failed", "error", err, "company", req.Company)
		writeError(w, http.StatusInternalServerError, "Failed to tailor resume. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"resume": resume})
}

func (h *handler) extractJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Description == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	extraction, err := h.extractor.Extract(r.Context(), req.Description)
	if err != nil {
		slog.Error("job extraction failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to extract job details. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, extraction)
}

func (h *handler) scrapeLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
		Location   string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.search.Search(req.SearchTerm, req.Location)
	if err != nil {
		h.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeErr maps service errors onto the wire: validation and not-found are
// surfaced verbatim; everything else is logged and reported generically,
// without leaking internal failure detail.
func (h *handler) writeErr(w http.ResponseWriter, err error) {
	if ae, ok := err.(*apperror.AppError); ok {
		if ae.Code() == apperror.Validation {
			writeValidationError(w, ae.Messages())
			return
		}
		if ae.Code() != apperror.Internal {
			writeError(w, ae.HTTPStatus(), ae.Message())
			return
		}
	}
	slog.Error("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
