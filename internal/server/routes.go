package server

import (
	"net/http"

	"github.com/ryannerby/jobnest/internal/ai"
	"github.com/ryannerby/jobnest/internal/job"
	"github.com/ryannerby/jobnest/internal/linkedin"
)

// NewHandler creates the full HTTP handler with routes and middleware.
// Exported for use in tests (e.g., httptest.NewServer).
func NewHandler(jobSvc *job.Service, extractor ai.Extractor, generator *ai.Generator, search *linkedin.Provider) http.Handler {
	return newMux(jobSvc, extractor, generator, search)
}

func newMux(jobSvc *job.Service, extractor ai.Extractor, generator *ai.Generator, search *linkedin.Provider) http.Handler {
	h := &handler{
		jobSvc:    jobSvc,
		extractor: extractor,
		generator: generator,
		search:    search,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.root)
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/jobs", h.listJobs)
	mux.HandleFunc("POST /api/jobs", h.createJob)
	mux.HandleFunc("PUT /api/jobs/{id}", h.updateJob)
	mux.HandleFunc("DELETE /api/jobs/{id}", h.deleteJob)
	mux.HandleFunc("POST /api/generate-cover-letter", h.generateCoverLetter)
	mux.HandleFunc("POST /api/tailor-resume", h.tailorResume)
	mux.HandleFunc("POST /api/extract-job", h.extractJob)
	mux.HandleFunc("POST /api/scrape-linkedin", h.scrapeLinkedIn)

	// Apply middleware stack: recovery -> requestID -> logging
	var handler http.Handler = mux
	handler = logging(handler)
	handler = requestID(handler)
	handler = recovery(handler)

	return handler
}
