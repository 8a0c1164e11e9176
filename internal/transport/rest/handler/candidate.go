package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"talenthub/internal/model"
	"talenthub/internal/service"
)

// CandidateHandler handles candidate pipeline and notes endpoints
type CandidateHandler struct {
	candidateSvc *service.CandidateService
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateSvc *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidateSvc: candidateSvc}
}

// ChangeStageRequest moves a candidate on the kanban board
type ChangeStageRequest struct {
	Stage model.Stage `json:"stage"`
}

// AddNoteRequest appends one note to a candidate's feed
type AddNoteRequest struct {
	Text string `json:"text"`
}

// Get handles GET /v1/candidates/{candidateId}
func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	candidateID := mux.Vars(r)["candidateId"]

	candidate, err := h.candidateSvc.GetByID(r.Context(), candidateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if candidate == nil {
		writeError(w, http.StatusNotFound, "candidate not found")
		return
	}

	writeJSON(w, http.StatusOK, candidate)
}

// ListByJob handles GET /v1/jobs/{jobId}/candidates
func (h *CandidateHandler) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobId"]

	candidates, err := h.candidateSvc.ListByJobID(r.Context(), jobID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"candidates": candidates})
}

// ChangeStage handles PATCH /v1/candidates/{candidateId}/stage
func (h *CandidateHandler) ChangeStage(w http.ResponseWriter, r *http.Request) {
	candidateID := mux.Vars(r)["candidateId"]

	var req ChangeStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate, err := h.candidateSvc.ChangeStage(r.Context(), candidateID, req.Stage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStage):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCandidateNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, candidate)
}

// Notes handles GET /v1/candidates/{candidateId}/notes
func (h *CandidateHandler) Notes(w http.ResponseWriter, r *http.Request) {
	candidateID := mux.Vars(r)["candidateId"]

	notes, err := h.candidateSvc.Notes(r.Context(), candidateID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if notes == nil {
		notes = []model.Note{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"notes": notes})
}

// AddNote handles POST /v1/candidates/{candidateId}/notes
func (h *CandidateHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	candidateID := mux.Vars(r)["candidateId"]

	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "note text is required")
		return
	}

	note, err := h.candidateSvc.AddNote(r.Context(), candidateID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, note)
}
