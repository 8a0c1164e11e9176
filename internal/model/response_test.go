package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseSetDecodesMixedAnswerKinds(t *testing.T) {
	raw := `{"q1":"dev","q2":["Go","Rust"],"q3":7.5,"q4":null}`

	var rs ResponseSet
	require.NoError(t, json.Unmarshal([]byte(raw), &rs))

	assert.Equal(t, TextAnswer("dev"), rs["q1"])
	assert.Equal(t, ChoicesAnswer("Go", "Rust"), rs["q2"])
	assert.Equal(t, NumberAnswer(7.5), rs["q3"])
	assert.Equal(t, AnswerNone, rs["q4"].Kind)
	assert.True(t, rs["q4"].IsEmpty())
}

func TestAnswerValueRejectsNonStringArrays(t *testing.T) {
	var v AnswerValue
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"nested":true}`), &v))
}

func TestAnswerValueStrictMatching(t *testing.T) {
	assert.True(t, TextAnswer("5").MatchesString("5"))
	assert.False(t, NumberAnswer(5).MatchesString("5"))
	assert.False(t, ChoicesAnswer("5").MatchesString("5"))
	assert.False(t, AnswerValue{}.MatchesString(""))
}
