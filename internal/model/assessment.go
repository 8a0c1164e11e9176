package model

import "time"

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
	QuestionTypeShortText    QuestionType = "short-text"
	QuestionTypeLongText     QuestionType = "long-text"
	QuestionTypeNumeric      QuestionType = "numeric"
	QuestionTypeFileUpload   QuestionType = "file-upload"
)

// IsChoice reports whether the type carries an options list.
func (t QuestionType) IsChoice() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

// IsText reports whether the type takes length-bounded free text.
func (t QuestionType) IsText() bool {
	return t == QuestionTypeShortText || t == QuestionTypeLongText
}

// IsKnown reports whether t is one of the closed set of question types.
func (t QuestionType) IsKnown() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultiChoice, QuestionTypeShortText,
		QuestionTypeLongText, QuestionTypeNumeric, QuestionTypeFileUpload:
		return true
	}
	return false
}

// Validation carries the per-type answer constraints. Text questions use
// MinLength/MaxLength, numeric questions use Min/Max; choice and file-upload
// questions carry no validation block at all. Pointer fields distinguish
// "bound not set" from a real bound of zero.
type Validation struct {
	MinLength *int     `json:"minLength,omitempty" bson:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" bson:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// ConditionalOn hides a question unless the referenced earlier question's
// answer matches Value (single match) or is a member of Values (set match).
// Exactly one of Value/Values is populated.
type ConditionalOn struct {
	QuestionID string   `json:"questionId" bson:"questionId"`
	Value      string   `json:"value,omitempty" bson:"value,omitempty"`
	Values     []string `json:"values,omitempty" bson:"values,omitempty"`
}

// Question is a single prompt within a section
type Question struct {
	ID            string         `json:"id" bson:"id"`
	Type          QuestionType   `json:"type" bson:"type"`
	Question      string         `json:"question" bson:"question"`
	Required      bool           `json:"required" bson:"required"`
	Options       []string       `json:"options,omitempty" bson:"options,omitempty"`
	Validation    *Validation    `json:"validation,omitempty" bson:"validation,omitempty"`
	ConditionalOn *ConditionalOn `json:"conditionalOn,omitempty" bson:"conditionalOn,omitempty"`
}

// Section is an ordered group of questions
type Section struct {
	ID        string     `json:"id" bson:"id"`
	Title     string     `json:"title" bson:"title"`
	Questions []Question `json:"questions" bson:"questions"`
}

// Assessment is the whole form definition for one job posting. It is
// persisted as a single document; there are no partial updates.
type Assessment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	JobID       string    `json:"jobId" bson:"jobId"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Sections    []Section `json:"sections" bson:"sections"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// SectionPatch is a partial update for a section. Nil fields are left as-is.
type SectionPatch struct {
	Title *string `json:"title,omitempty"`
}

// QuestionPatch is a partial update for a question. Nil fields are left as-is;
// ClearConditionalOn removes an existing visibility rule (setting
// ConditionalOn to nil in the patch just means "don't touch it").
type QuestionPatch struct {
	Type               *QuestionType  `json:"type,omitempty"`
	Question           *string        `json:"question,omitempty"`
	Required           *bool          `json:"required,omitempty"`
	Options            []string       `json:"options,omitempty"`
	Validation         *Validation    `json:"validation,omitempty"`
	ConditionalOn      *ConditionalOn `json:"conditionalOn,omitempty"`
	ClearConditionalOn bool           `json:"clearConditionalOn,omitempty"`
}
