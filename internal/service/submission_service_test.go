package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/internal/model"
)

func submissionFixture(t *testing.T) (*SubmissionService, *fakeSubmissionRepo) {
	t.Helper()
	assessmentRepo := newFakeAssessmentRepo()
	assessmentRepo.byJobID["job-1"] = model.Assessment{
		ID:    "assessment-job-1",
		JobID: "job-1",
		Sections: []model.Section{{
			ID: "section-a",
			Questions: []model.Question{
				{ID: "Q1", Type: model.QuestionTypeShortText, Required: true},
				{ID: "Q2", Type: model.QuestionTypeSingleChoice,
					Options:       []string{"yes", "no"},
					ConditionalOn: &model.ConditionalOn{QuestionID: "Q1", Value: "dev"}},
			},
		}},
	}

	submissions := &fakeSubmissionRepo{}
	svc := NewSubmissionService(NewAssessmentService(assessmentRepo, newFakeJobRepo(), nil), submissions)
	return svc, submissions
}

func TestSubmitStoresCleanResponseSet(t *testing.T) {
	svc, submissions := submissionFixture(t)

	violations, submission, err := svc.Submit(context.Background(), "job-1", "cand-1",
		model.ResponseSet{"Q1": model.TextAnswer("dev"), "Q2": model.TextAnswer("yes")})

	require.NoError(t, err)
	assert.Empty(t, violations)
	require.NotNil(t, submission)
	assert.Equal(t, "assessment-job-1", submission.AssessmentID)
	assert.Equal(t, "cand-1", submission.CandidateID)
	assert.Len(t, submissions.submissions, 1)
}

func TestSubmitReturnsViolationsWithoutStoring(t *testing.T) {
	svc, submissions := submissionFixture(t)

	violations, submission, err := svc.Submit(context.Background(), "job-1", "cand-1",
		model.ResponseSet{})

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "Q1", violations[0].QuestionID)
	assert.Nil(t, submission)
	assert.Empty(t, submissions.submissions)
}

func TestSubmitUnknownJob(t *testing.T) {
	svc, _ := submissionFixture(t)

	_, _, err := svc.Submit(context.Background(), "job-missing", "cand-1", model.ResponseSet{})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}
