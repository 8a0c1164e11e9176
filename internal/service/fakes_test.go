package service

import (
	"context"
	"sync"

	"talenthub/internal/model"
)

// In-memory stand-ins for the Mongo repositories and the Redis notes store.

type fakeAssessmentRepo struct {
	mu      sync.Mutex
	byJobID map[string]model.Assessment
	saved   []model.Assessment
	saveErr error
	gate    chan struct{} // when set, Save blocks until the channel yields
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{byJobID: make(map[string]model.Assessment)}
}

func (r *fakeAssessmentRepo) GetByJobID(_ context.Context, jobID string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byJobID[jobID]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAssessmentRepo) Save(_ context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	gate := r.gate
	r.mu.Unlock()
	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.byJobID[assessment.JobID] = *assessment
	r.saved = append(r.saved, *assessment)
	return nil
}

func (r *fakeAssessmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for jobID, a := range r.byJobID {
		if a.ID == id {
			delete(r.byJobID, jobID)
		}
	}
	return nil
}

func (r *fakeAssessmentRepo) savedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func (r *fakeAssessmentRepo) lastSaved() model.Assessment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved[len(r.saved)-1]
}

type fakeJobRepo struct {
	jobs map[string]model.Job
}

func newFakeJobRepo(jobs ...model.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: make(map[string]model.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(_ context.Context, job *model.Job) error {
	r.jobs[job.ID] = *job
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	return &j, nil
}

func (r *fakeJobRepo) List(_ context.Context) ([]*model.Job, error) {
	var out []*model.Job
	for _, j := range r.jobs {
		job := j
		out = append(out, &job)
	}
	return out, nil
}

type fakeCandidateRepo struct {
	candidates map[string]model.Candidate
}

func newFakeCandidateRepo(candidates ...model.Candidate) *fakeCandidateRepo {
	r := &fakeCandidateRepo{candidates: make(map[string]model.Candidate)}
	for _, c := range candidates {
		r.candidates[c.ID] = c
	}
	return r
}

func (r *fakeCandidateRepo) Create(_ context.Context, c *model.Candidate) error {
	r.candidates[c.ID] = *c
	return nil
}

func (r *fakeCandidateRepo) GetByID(_ context.Context, id string) (*model.Candidate, error) {
	c, ok := r.candidates[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCandidateRepo) GetByJobID(_ context.Context, jobID string) ([]*model.Candidate, error) {
	var out []*model.Candidate
	for _, c := range r.candidates {
		if c.JobID == jobID {
			candidate := c
			out = append(out, &candidate)
		}
	}
	return out, nil
}

func (r *fakeCandidateRepo) Update(_ context.Context, c *model.Candidate) error {
	r.candidates[c.ID] = *c
	return nil
}

type fakeSubmissionRepo struct {
	submissions []model.Submission
	createErr   error
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.submissions = append(r.submissions, *s)
	return nil
}

func (r *fakeSubmissionRepo) GetByJobID(_ context.Context, jobID string) ([]*model.Submission, error) {
	var out []*model.Submission
	for i := range r.submissions {
		if r.submissions[i].JobID == jobID {
			out = append(out, &r.submissions[i])
		}
	}
	return out, nil
}

type fakeNotesStore struct {
	notes map[string][]model.Note
}

func newFakeNotesStore() *fakeNotesStore {
	return &fakeNotesStore{notes: make(map[string][]model.Note)}
}

func (s *fakeNotesStore) Get(_ context.Context, candidateID string) ([]model.Note, error) {
	return s.notes[candidateID], nil
}

func (s *fakeNotesStore) Append(_ context.Context, candidateID, text string) (*model.Note, error) {
	note := model.Note{ID: "note-1", Text: text}
	s.notes[candidateID] = append(s.notes[candidateID], note)
	return &note, nil
}
