package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// AnswerKind tags the runtime type of a respondent's answer
type AnswerKind int

const (
	AnswerNone    AnswerKind = iota // no answer / explicit null
	AnswerText                      // string answer (text, single-choice, file name)
	AnswerChoices                   // string-set answer (multi-choice)
	AnswerNumber                    // numeric answer
)

// AnswerValue is one freeform answer. On the wire it is a bare JSON string,
// array of strings, number, or null; the kind is recovered on decode.
// Equality against conditional targets is strict: a number never matches a
// string, even when they print the same.
type AnswerValue struct {
	Kind    AnswerKind
	Text    string
	Choices []string
	Number  float64
}

// TextAnswer builds a string answer.
func TextAnswer(s string) AnswerValue { return AnswerValue{Kind: AnswerText, Text: s} }

// ChoicesAnswer builds a string-set answer.
func ChoicesAnswer(vs ...string) AnswerValue { return AnswerValue{Kind: AnswerChoices, Choices: vs} }

// NumberAnswer builds a numeric answer.
func NumberAnswer(n float64) AnswerValue { return AnswerValue{Kind: AnswerNumber, Number: n} }

// IsEmpty reports whether the answer counts as missing for a required check:
// absent, null, empty string, or an empty selection set.
func (v AnswerValue) IsEmpty() bool {
	switch v.Kind {
	case AnswerNone:
		return true
	case AnswerText:
		return v.Text == ""
	case AnswerChoices:
		return len(v.Choices) == 0
	}
	return false
}

// MatchesString reports whether the answer strictly equals the string target.
// Only string answers can match; choice sets and numbers never do.
func (v AnswerValue) MatchesString(target string) bool {
	return v.Kind == AnswerText && v.Text == target
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerText:
		return json.Marshal(v.Text)
	case AnswerChoices:
		return json.Marshal(v.Choices)
	case AnswerNumber:
		return json.Marshal(v.Number)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = AnswerValue{}
	case string:
		*v = AnswerValue{Kind: AnswerText, Text: t}
	case float64:
		*v = AnswerValue{Kind: AnswerNumber, Number: t}
	case []interface{}:
		choices := make([]string, 0, len(t))
		for _, el := range t {
			s, ok := el.(string)
			if !ok {
				return fmt.Errorf("answer array may only contain strings, got %T", el)
			}
			choices = append(choices, s)
		}
		*v = AnswerValue{Kind: AnswerChoices, Choices: choices}
	default:
		return fmt.Errorf("unsupported answer value of type %T", t)
	}
	return nil
}

// ResponseSet holds the answers for one fill-out session, keyed by question id
type ResponseSet map[string]AnswerValue

// Violation reports one failed constraint, keyed to the offending question
type Violation struct {
	QuestionID string `json:"questionId"`
	Reason     string `json:"reason"`
}

// Submission is a validated response set stored for a candidate
type Submission struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	AssessmentID string      `json:"assessmentId" bson:"assessmentId"`
	JobID        string      `json:"jobId" bson:"jobId"`
	CandidateID  string      `json:"candidateId" bson:"candidateId"`
	Responses    ResponseSet `json:"responses" bson:"responses"`
	SubmittedAt  time.Time   `json:"submittedAt" bson:"submittedAt"`
}
