package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/internal/repository"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	jobRepo repository.JobRepo
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobRepo repository.JobRepo) *JobHandler {
	return &JobHandler{jobRepo: jobRepo}
}

// List handles GET /v1/jobs
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"jobs": jobs})
}

// Get handles GET /v1/jobs/{jobId}
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	job, err := h.jobRepo.GetByID(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}

	writeJSON(w, http.StatusOK, job)
}
