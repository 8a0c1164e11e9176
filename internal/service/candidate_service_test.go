package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/internal/model"
)

func TestChangeStageAppendsTimeline(t *testing.T) {
	repo := newFakeCandidateRepo(model.Candidate{
		ID: "cand-1", Name: "Jordan Diaz", Stage: model.StageApplied, JobID: "job-1",
	})
	svc := NewCandidateService(repo, newFakeNotesStore())

	got, err := svc.ChangeStage(context.Background(), "cand-1", model.StageScreening)
	require.NoError(t, err)
	assert.Equal(t, model.StageScreening, got.Stage)
	require.Len(t, got.Timeline, 1)
	assert.Equal(t, model.StageApplied, got.Timeline[0].FromStage)
	assert.Equal(t, model.StageScreening, got.Timeline[0].ToStage)
	assert.False(t, got.Timeline[0].At.IsZero())

	// Moving to the same stage logs nothing.
	got, err = svc.ChangeStage(context.Background(), "cand-1", model.StageScreening)
	require.NoError(t, err)
	assert.Len(t, got.Timeline, 1)
}

func TestChangeStageRejectsUnknownStage(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo(), newFakeNotesStore())

	_, err := svc.ChangeStage(context.Background(), "cand-1", model.Stage("vibing"))
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestChangeStageUnknownCandidate(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo(), newFakeNotesStore())

	_, err := svc.ChangeStage(context.Background(), "cand-missing", model.StageOffer)
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestNotesFeed(t *testing.T) {
	repo := newFakeCandidateRepo(model.Candidate{ID: "cand-1", JobID: "job-1"})
	svc := NewCandidateService(repo, newFakeNotesStore())

	_, err := svc.AddNote(context.Background(), "cand-1", "Strong take-home, schedule @maria")
	require.NoError(t, err)

	notes, err := svc.Notes(context.Background(), "cand-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Strong take-home, schedule @maria", notes[0].Text)
}

func TestAddNoteUnknownCandidate(t *testing.T) {
	svc := NewCandidateService(newFakeCandidateRepo(), newFakeNotesStore())

	_, err := svc.AddNote(context.Background(), "cand-missing", "hello")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}
