package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub/internal/model"
)

func TestValidateRequired(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeShortText, Required: true},
	})

	tests := []struct {
		name      string
		responses model.ResponseSet
		valid     bool
	}{
		{"missing", model.ResponseSet{}, false},
		{"empty string", model.ResponseSet{"q1": model.TextAnswer("")}, false},
		{"explicit null", model.ResponseSet{"q1": {}}, false},
		{"answered", model.ResponseSet{"q1": model.TextAnswer("ok")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Validate(a, tt.responses)
			if tt.valid {
				assert.Empty(t, violations)
			} else {
				require.Len(t, violations, 1)
				assert.Equal(t, "q1", violations[0].QuestionID)
				assert.Equal(t, "answer is required", violations[0].Reason)
			}
		})
	}
}

func TestValidateTextLengthBounds(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeShortText,
			Validation: &model.Validation{MinLength: intRef(5), MaxLength: intRef(10)}},
	})

	violations := Validate(a, model.ResponseSet{"q1": model.TextAnswer("hi")})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "minLength 5")

	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.TextAnswer("hello")}))

	violations = Validate(a, model.ResponseSet{"q1": model.TextAnswer("hello world")})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "maxLength 10")
}

func TestValidateZeroBoundsStillChecked(t *testing.T) {
	// minLength 0 is vacuous but min 0 on a numeric question is not: a
	// negative answer must fail even though the bound is falsy.
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeNumeric,
			Validation: &model.Validation{Min: floatRef(0), Max: floatRef(100)}},
	})

	violations := Validate(a, model.ResponseSet{"q1": model.NumberAnswer(-1)})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "below min 0")

	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.NumberAnswer(0)}))
	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.NumberAnswer(100)}))

	violations = Validate(a, model.ResponseSet{"q1": model.NumberAnswer(101)})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "exceeds max 100")
}

func TestValidateOptionalUnansweredSkipsBounds(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeShortText,
			Validation: &model.Validation{MinLength: intRef(5)}},
	})

	assert.Empty(t, Validate(a, model.ResponseSet{}))
	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.TextAnswer("")}))
}

func TestValidateHiddenQuestionsExempt(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeSingleChoice, Options: []string{"yes", "no"}},
		{ID: "q2", Type: model.QuestionTypeShortText, Required: true,
			ConditionalOn: &model.ConditionalOn{QuestionID: "q1", Value: "yes"}},
	})

	// q2 is hidden, so its required flag never fires.
	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.TextAnswer("no")}))

	violations := Validate(a, model.ResponseSet{"q1": model.TextAnswer("yes")})
	require.Len(t, violations, 1)
	assert.Equal(t, "q2", violations[0].QuestionID)
}

func TestValidateChoiceQuestionsOnlyCheckRequired(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeMultiChoice, Required: true,
			Options: []string{"Go", "Rust"}},
	})

	require.Len(t, Validate(a, model.ResponseSet{}), 1)
	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.ChoicesAnswer("Go")}))
	// Option membership is the builder's concern, not the validator's.
	assert.Empty(t, Validate(a, model.ResponseSet{"q1": model.ChoicesAnswer("COBOL")}))
}

func TestValidateConditionalScenario(t *testing.T) {
	// Q1 gates Q2: a "dev" answer reveals Q2, which is optional.
	a := buildAssessment([]model.Question{
		{ID: "Q1", Type: model.QuestionTypeShortText, Required: true,
			Validation: &model.Validation{MinLength: intRef(3)}},
		{ID: "Q2", Type: model.QuestionTypeSingleChoice, Options: []string{"yes", "no"},
			ConditionalOn: &model.ConditionalOn{QuestionID: "Q1", Value: "dev"}},
	})

	// Q2 visible but unanswered and not required: valid overall.
	assert.True(t, Submittable(a, model.ResponseSet{"Q1": model.TextAnswer("dev")}))

	// Q1 too short; Q2 hidden and irrelevant.
	violations := Validate(a, model.ResponseSet{"Q1": model.TextAnswer("hi")})
	require.Len(t, violations, 1)
	assert.Equal(t, "Q1", violations[0].QuestionID)
	assert.Contains(t, violations[0].Reason, "minLength 3")
}

func TestValidateReportsAllViolations(t *testing.T) {
	a := buildAssessment([]model.Question{
		{ID: "q1", Type: model.QuestionTypeShortText, Required: true},
		{ID: "q2", Type: model.QuestionTypeNumeric,
			Validation: &model.Validation{Max: floatRef(10)}},
	})

	violations := Validate(a, model.ResponseSet{"q2": model.NumberAnswer(99)})
	require.Len(t, violations, 2)
	assert.Equal(t, "q1", violations[0].QuestionID)
	assert.Equal(t, "q2", violations[1].QuestionID)
}
