package service

import (
	"context"
	"errors"
	"time"

	"talenthub/internal/cache"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrUnknownStage      = errors.New("unknown pipeline stage")
)

// CandidateService handles the candidate pipeline: stage transitions with
// timeline logging, and the per-candidate notes feed.
type CandidateService struct {
	candidateRepo repository.CandidateRepo
	notes         cache.NotesStore
}

// NewCandidateService creates a new candidate service
func NewCandidateService(candidateRepo repository.CandidateRepo, notes cache.NotesStore) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		notes:         notes,
	}
}

// GetByID returns the candidate, nil when absent.
func (s *CandidateService) GetByID(ctx context.Context, id string) (*model.Candidate, error) {
	return s.candidateRepo.GetByID(ctx, id)
}

// ListByJobID returns the job's candidates for the kanban board.
func (s *CandidateService) ListByJobID(ctx context.Context, jobID string) ([]*model.Candidate, error) {
	return s.candidateRepo.GetByJobID(ctx, jobID)
}

// ChangeStage moves the candidate to a new pipeline stage and appends the
// transition to their timeline.
func (s *CandidateService) ChangeStage(ctx context.Context, candidateID string, to model.Stage) (*model.Candidate, error) {
	if !to.IsKnown() {
		return nil, ErrUnknownStage
	}

	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	if candidate.Stage == to {
		return candidate, nil
	}

	candidate.Timeline = append(candidate.Timeline, model.TimelineEvent{
		FromStage: candidate.Stage,
		ToStage:   to,
		At:        time.Now(),
	})
	candidate.Stage = to

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Notes returns the candidate's notes feed, oldest first.
func (s *CandidateService) Notes(ctx context.Context, candidateID string) ([]model.Note, error) {
	return s.notes.Get(ctx, candidateID)
}

// AddNote appends a note to the candidate's feed.
func (s *CandidateService) AddNote(ctx context.Context, candidateID, text string) (*model.Note, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}
	return s.notes.Append(ctx, candidateID, text)
}
