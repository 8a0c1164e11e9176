package model

import "time"

// Stage is a candidate's position in the hiring pipeline
type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// IsKnown reports whether s is one of the pipeline stages.
func (s Stage) IsKnown() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffer, StageHired, StageRejected:
		return true
	}
	return false
}

// TimelineEvent records one stage transition on a candidate's history
type TimelineEvent struct {
	FromStage Stage     `json:"fromStage" bson:"fromStage"`
	ToStage   Stage     `json:"toStage" bson:"toStage"`
	At        time.Time `json:"at" bson:"at"`
}

// Candidate is an applicant attached to one job
type Candidate struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	Name      string          `json:"name" bson:"name"`
	Email     string          `json:"email" bson:"email"`
	Stage     Stage           `json:"stage" bson:"stage"`
	JobID     string          `json:"jobId" bson:"jobId"`
	Phone     string          `json:"phone" bson:"phone"`
	Resume    string          `json:"resume" bson:"resume"`
	Skills    []string        `json:"skills,omitempty" bson:"skills,omitempty"`
	Timeline  []TimelineEvent `json:"timeline" bson:"timeline"`
	AppliedAt time.Time       `json:"appliedAt" bson:"appliedAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Note is one dated entry on a candidate's notes feed
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
