package form

import "talenthub/internal/model"

// Flatten returns the assessment's questions in evaluation order: section
// order first, then question order within each section.
func Flatten(a model.Assessment) []model.Question {
	var out []model.Question
	for _, s := range a.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

// Visibility computes which questions are currently visible given the
// respondent's answers so far. Keys are question ids; every question in the
// assessment gets an entry.
//
// A conditionalOn rule may only reference a question that occurs strictly
// earlier in evaluation order. Rules that point forward, at themselves, or at
// an unknown id fail open: the question is treated as always visible rather
// than erroring out.
//
// Visibility reads the raw answer of the referenced question even when that
// question is itself hidden. Answers persist after a question disappears, and
// the rule keeps matching against them.
func Visibility(a model.Assessment, responses model.ResponseSet) map[string]bool {
	flat := Flatten(a)
	visible := make(map[string]bool, len(flat))
	seen := make(map[string]bool, len(flat))

	for _, q := range flat {
		visible[q.ID] = questionVisible(q, responses, seen)
		seen[q.ID] = true
	}
	return visible
}

// VisibleQuestions filters the flattened question list down to the currently
// visible ones, preserving evaluation order.
func VisibleQuestions(a model.Assessment, responses model.ResponseSet) []model.Question {
	visible := Visibility(a, responses)
	var out []model.Question
	for _, q := range Flatten(a) {
		if visible[q.ID] {
			out = append(out, q)
		}
	}
	return out
}

func questionVisible(q model.Question, responses model.ResponseSet, seen map[string]bool) bool {
	cond := q.ConditionalOn
	if cond == nil {
		return true
	}
	if !seen[cond.QuestionID] {
		// Forward, cyclic, or dangling reference: fail open.
		return true
	}

	answer := responses[cond.QuestionID]
	if len(cond.Values) > 0 {
		for _, v := range cond.Values {
			if answer.MatchesString(v) {
				return true
			}
		}
		return false
	}
	return answer.MatchesString(cond.Value)
}
