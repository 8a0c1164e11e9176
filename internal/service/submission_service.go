package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"talenthub/internal/form"
	"talenthub/internal/model"
	"talenthub/internal/repository"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

// SubmissionService validates candidate response sets against the stored
// schema and records the clean ones.
type SubmissionService struct {
	assessmentSvc  *AssessmentService
	submissionRepo repository.SubmissionRepo
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(assessmentSvc *AssessmentService, submissionRepo repository.SubmissionRepo) *SubmissionService {
	return &SubmissionService{
		assessmentSvc:  assessmentSvc,
		submissionRepo: submissionRepo,
	}
}

// Submit checks the responses against every visible question's constraints.
// Violations come back as data, not as an error; the submission is stored
// only when there are none.
func (s *SubmissionService) Submit(ctx context.Context, jobID, candidateID string, responses model.ResponseSet) ([]model.Violation, *model.Submission, error) {
	assessment, err := s.assessmentSvc.Get(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if assessment == nil {
		return nil, nil, ErrAssessmentNotFound
	}

	violations := form.Validate(*assessment, responses)
	if len(violations) > 0 {
		return violations, nil, nil
	}

	submission := &model.Submission{
		ID:           "submission-" + uuid.New().String(),
		AssessmentID: assessment.ID,
		JobID:        jobID,
		CandidateID:  candidateID,
		Responses:    responses,
	}
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		return nil, nil, err
	}
	return nil, submission, nil
}
