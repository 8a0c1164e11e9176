package service

import (
	"context"
	"sync"

	"talenthub/internal/form"
	"talenthub/internal/model"
)

// BuilderState is the builder session's lifecycle position
type BuilderState string

const (
	StateLoading    BuilderState = "loading"
	StateReady      BuilderState = "ready"
	StateSaving     BuilderState = "saving"
	StateSaveFailed BuilderState = "save_failed"
)

// BuilderSession owns one in-progress assessment draft. Edits are applied
// synchronously to the in-memory schema; saves run in the background with a
// superseding policy: a save requested while another is in flight replaces
// the pending document, and the earlier save's result is discarded. A failed
// save never touches the draft.
type BuilderSession struct {
	svc *AssessmentService

	mu         sync.Mutex
	idle       *sync.Cond
	state      BuilderState
	assessment model.Assessment
	pending    *model.Assessment
	inFlight   bool
	saveErr    error
}

// NewBuilderSession starts a session in the Loading state.
func NewBuilderSession(svc *AssessmentService) *BuilderSession {
	s := &BuilderSession{
		svc:   svc,
		state: StateLoading,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Load pulls (or initializes) the job's assessment and moves to Ready.
func (s *BuilderSession) Load(ctx context.Context, jobID string) error {
	assessment, err := s.svc.LoadOrInit(ctx, jobID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.assessment = *assessment
	s.state = StateReady
	s.mu.Unlock()
	return nil
}

// State returns the current lifecycle state.
func (s *BuilderSession) State() BuilderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Assessment returns a snapshot of the current draft.
func (s *BuilderSession) Assessment() model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assessment
}

// SaveErr returns the error from the most recent failed save, cleared when a
// later save succeeds.
func (s *BuilderSession) SaveErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// Edit applies one schema mutation to the draft. Ops are pure functions from
// the form package, so the session just swaps in the returned value.
func (s *BuilderSession) Edit(op func(model.Assessment) model.Assessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessment = op(s.assessment)
	if s.state == StateSaveFailed {
		s.state = StateReady
	}
}

// AddSection appends a new section to the draft.
func (s *BuilderSession) AddSection() {
	s.Edit(form.AddSection)
}

// UpdateSection patches a section in the draft.
func (s *BuilderSession) UpdateSection(sectionID string, patch model.SectionPatch) {
	s.Edit(func(a model.Assessment) model.Assessment {
		return form.UpdateSection(a, sectionID, patch)
	})
}

// DeleteSection removes a section and its questions from the draft.
func (s *BuilderSession) DeleteSection(sectionID string) {
	s.Edit(func(a model.Assessment) model.Assessment {
		return form.DeleteSection(a, sectionID)
	})
}

// AddQuestion appends a question of the given type to a section.
func (s *BuilderSession) AddQuestion(sectionID string, qType model.QuestionType) {
	s.Edit(func(a model.Assessment) model.Assessment {
		return form.AddQuestion(a, sectionID, qType)
	})
}

// UpdateQuestion patches a question in the draft.
func (s *BuilderSession) UpdateQuestion(sectionID, questionID string, patch model.QuestionPatch) {
	s.Edit(func(a model.Assessment) model.Assessment {
		return form.UpdateQuestion(a, sectionID, questionID, patch)
	})
}

// DeleteQuestion removes a question from the draft.
func (s *BuilderSession) DeleteQuestion(sectionID, questionID string) {
	s.Edit(func(a model.Assessment) model.Assessment {
		return form.DeleteQuestion(a, sectionID, questionID)
	})
}

// Save snapshots the draft and persists it in the background. If a save is
// already in flight the snapshot supersedes any previously queued one; the
// in-flight save's outcome is discarded in favor of the newest request.
func (s *BuilderSession) Save(ctx context.Context) {
	s.mu.Lock()
	snapshot := s.assessment
	if s.inFlight {
		s.pending = &snapshot
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.state = StateSaving
	s.mu.Unlock()

	go s.saveLoop(ctx, snapshot)
}

func (s *BuilderSession) saveLoop(ctx context.Context, snapshot model.Assessment) {
	for {
		err := s.svc.Save(ctx, &snapshot)

		s.mu.Lock()
		if s.pending != nil {
			// A newer save superseded this one; its result does not count.
			snapshot = *s.pending
			s.pending = nil
			s.mu.Unlock()
			continue
		}
		if err != nil {
			s.state = StateSaveFailed
			s.saveErr = err
		} else {
			s.state = StateReady
			s.saveErr = nil
		}
		s.inFlight = false
		s.idle.Broadcast()
		s.mu.Unlock()
		return
	}
}

// Flush blocks until no save is in flight and reports whether the last save
// succeeded.
func (s *BuilderSession) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.inFlight {
		s.idle.Wait()
	}
	return s.saveErr
}
