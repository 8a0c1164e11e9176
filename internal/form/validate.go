package form

import (
	"fmt"
	"unicode/utf8"

	"talenthub/internal/model"
)

// Validate checks a response set against every currently-visible question and
// returns one violation per failed constraint. Hidden questions are exempt
// from all checks, including required. An empty result means the form is
// submittable.
//
// Bounds are checked by presence, not truthiness: a minLength or min of 0 is
// a real (if vacuous) bound, never a signal to skip the check.
func Validate(a model.Assessment, responses model.ResponseSet) []model.Violation {
	var violations []model.Violation

	for _, q := range VisibleQuestions(a, responses) {
		answer, answered := responses[q.ID]
		if q.Required && (!answered || answer.IsEmpty()) {
			violations = append(violations, model.Violation{
				QuestionID: q.ID,
				Reason:     "answer is required",
			})
			continue
		}
		if q.Validation == nil || !answered || answer.IsEmpty() {
			continue
		}
		violations = append(violations, checkBounds(q, answer)...)
	}
	return violations
}

// Submittable reports whether the response set passes validation outright.
func Submittable(a model.Assessment, responses model.ResponseSet) bool {
	return len(Validate(a, responses)) == 0
}

func checkBounds(q model.Question, answer model.AnswerValue) []model.Violation {
	var out []model.Violation
	v := q.Validation

	if q.Type.IsText() && answer.Kind == model.AnswerText {
		length := utf8.RuneCountInString(answer.Text)
		if v.MinLength != nil && length < *v.MinLength {
			out = append(out, model.Violation{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("answer length %d is below minLength %d", length, *v.MinLength),
			})
		}
		if v.MaxLength != nil && length > *v.MaxLength {
			out = append(out, model.Violation{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("answer length %d exceeds maxLength %d", length, *v.MaxLength),
			})
		}
	}

	if q.Type == model.QuestionTypeNumeric && answer.Kind == model.AnswerNumber {
		if v.Min != nil && answer.Number < *v.Min {
			out = append(out, model.Violation{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("answer %v is below min %v", answer.Number, *v.Min),
			})
		}
		if v.Max != nil && answer.Number > *v.Max {
			out = append(out, model.Violation{
				QuestionID: q.ID,
				Reason:     fmt.Sprintf("answer %v exceeds max %v", answer.Number, *v.Max),
			})
		}
	}
	return out
}
