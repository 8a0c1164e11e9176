// Package form owns the assessment schema: building and editing the
// section/question tree, deciding which questions a respondent currently
// sees, and checking a response set against the schema's constraints.
// Everything in here is pure; persistence lives in the repositories.
package form

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"talenthub/internal/model"
)

// NewAssessment initializes an empty assessment for a job. The id is derived
// from the job id so a job maps to exactly one assessment document.
func NewAssessment(jobID, jobTitle string) model.Assessment {
	return model.Assessment{
		ID:        "assessment-" + jobID,
		JobID:     jobID,
		Title:     "Assessment for " + jobTitle,
		Sections:  []model.Section{},
		CreatedAt: time.Now(),
	}
}

// AddSection appends a new empty section titled "Section {n}". The input is
// not mutated; all mutation ops here return a fresh assessment value.
func AddSection(a model.Assessment) model.Assessment {
	section := model.Section{
		ID:        "section-" + uuid.New().String(),
		Title:     fmt.Sprintf("Section %d", len(a.Sections)+1),
		Questions: []model.Question{},
	}
	out := a
	out.Sections = append(append([]model.Section{}, a.Sections...), section)
	return out
}

// UpdateSection applies a partial update to the named section. Unknown
// section ids are a silent no-op so the builder stays resilient to stale ids.
func UpdateSection(a model.Assessment, sectionID string, patch model.SectionPatch) model.Assessment {
	idx := sectionIndex(a, sectionID)
	if idx < 0 {
		return a
	}
	section := a.Sections[idx]
	if patch.Title != nil {
		section.Title = *patch.Title
	}
	return withSection(a, idx, section)
}

// DeleteSection removes the section and all of its questions. No-op if the
// id is absent.
func DeleteSection(a model.Assessment, sectionID string) model.Assessment {
	idx := sectionIndex(a, sectionID)
	if idx < 0 {
		return a
	}
	out := a
	out.Sections = make([]model.Section, 0, len(a.Sections)-1)
	out.Sections = append(out.Sections, a.Sections[:idx]...)
	out.Sections = append(out.Sections, a.Sections[idx+1:]...)
	return out
}

// AddQuestion appends a question of the given type to the named section with
// type-dependent defaults. No-op if the section id is absent.
func AddQuestion(a model.Assessment, sectionID string, qType model.QuestionType) model.Assessment {
	idx := sectionIndex(a, sectionID)
	if idx < 0 {
		return a
	}

	q := model.Question{
		// Question ids embed the owning section id plus a UUID so they can
		// never collide across the assessment's lifetime.
		ID:       fmt.Sprintf("q-%s-%s", sectionID, uuid.New().String()),
		Type:     qType,
		Required: false,
	}
	switch {
	case qType.IsChoice():
		q.Options = []string{"Option 1", "Option 2"}
	case qType.IsText():
		q.Validation = &model.Validation{MinLength: intRef(0), MaxLength: intRef(1000)}
	case qType == model.QuestionTypeNumeric:
		q.Validation = &model.Validation{Min: floatRef(0), Max: floatRef(100)}
	}

	section := a.Sections[idx]
	section.Questions = append(append([]model.Question{}, section.Questions...), q)
	return withSection(a, idx, section)
}

// UpdateQuestion merges a partial update onto the question; fields not set in
// the patch are preserved. No-op if either id is absent.
func UpdateQuestion(a model.Assessment, sectionID, questionID string, patch model.QuestionPatch) model.Assessment {
	sIdx := sectionIndex(a, sectionID)
	if sIdx < 0 {
		return a
	}
	section := a.Sections[sIdx]
	qIdx := questionIndex(section, questionID)
	if qIdx < 0 {
		return a
	}

	q := section.Questions[qIdx]
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Question != nil {
		q.Question = *patch.Question
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = append([]string{}, patch.Options...)
	}
	if patch.Validation != nil {
		v := *patch.Validation
		q.Validation = &v
	}
	if patch.ClearConditionalOn {
		q.ConditionalOn = nil
	} else if patch.ConditionalOn != nil {
		c := *patch.ConditionalOn
		q.ConditionalOn = &c
	}

	section.Questions = append([]model.Question{}, section.Questions...)
	section.Questions[qIdx] = q
	return withSection(a, sIdx, section)
}

// DeleteQuestion removes the question from its section. No-op if absent.
func DeleteQuestion(a model.Assessment, sectionID, questionID string) model.Assessment {
	sIdx := sectionIndex(a, sectionID)
	if sIdx < 0 {
		return a
	}
	section := a.Sections[sIdx]
	qIdx := questionIndex(section, questionID)
	if qIdx < 0 {
		return a
	}

	questions := make([]model.Question, 0, len(section.Questions)-1)
	questions = append(questions, section.Questions[:qIdx]...)
	questions = append(questions, section.Questions[qIdx+1:]...)
	section.Questions = questions
	return withSection(a, sIdx, section)
}

func sectionIndex(a model.Assessment, sectionID string) int {
	for i, s := range a.Sections {
		if s.ID == sectionID {
			return i
		}
	}
	return -1
}

func questionIndex(s model.Section, questionID string) int {
	for i, q := range s.Questions {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}

// withSection returns a copy of the assessment with one section replaced,
// sharing the untouched sections with the input.
func withSection(a model.Assessment, idx int, section model.Section) model.Assessment {
	out := a
	out.Sections = append([]model.Section{}, a.Sections...)
	out.Sections[idx] = section
	return out
}

func intRef(v int) *int { return &v }

func floatRef(v float64) *float64 { return &v }
