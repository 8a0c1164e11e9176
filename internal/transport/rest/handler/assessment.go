package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"talenthub/internal/model"
	"talenthub/internal/service"
)

// AssessmentHandler handles assessment builder and submission endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	submissionSvc *service.SubmissionService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, submissionSvc *service.SubmissionService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		submissionSvc: submissionSvc,
	}
}

// SaveAssessmentRequest is the whole-document save payload
type SaveAssessmentRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Sections    []model.Section `json:"sections"`
}

// SubmitRequest carries one candidate's response set
type SubmitRequest struct {
	CandidateID string            `json:"candidateId"`
	Responses   model.ResponseSet `json:"responses"`
}

// Get handles GET /v1/assessments/{jobId}. A job without a saved assessment
// gets a fresh empty one so the builder always has something to edit.
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	assessment, err := h.assessmentSvc.LoadOrInit(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Save handles PUT /v1/assessments/{jobId}
func (h *AssessmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	var req SaveAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.LoadOrInit(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	assessment.Title = req.Title
	assessment.Description = req.Description
	assessment.Sections = req.Sections
	if assessment.Sections == nil {
		assessment.Sections = []model.Section{}
	}

	if err := h.assessmentSvc.Save(r.Context(), assessment); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /v1/assessments/{jobId}
func (h *AssessmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	if err := h.assessmentSvc.Delete(r.Context(), jobID); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Submit handles POST /v1/assessments/{jobId}/submit. Validation failures are
// a 200 with the violation list; only gateway trouble is an error.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	violations, submission, err := h.submissionSvc.Submit(r.Context(), jobID, req.CandidateID, req.Responses)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(violations) > 0 {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"submittable": false,
			"violations":  violations,
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"submittable":  true,
		"submissionId": submission.ID,
	})
}
