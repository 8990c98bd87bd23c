package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerJSON(t *testing.T) {
	t.Run("string decodes as text", func(t *testing.T) {
		var a Answer
		assert.NoError(t, json.Unmarshal([]byte(`"hello"`), &a))
		assert.Equal(t, AnswerText, a.Kind)
		assert.Equal(t, "hello", a.Text)
	})

	t.Run("array decodes as multi choice", func(t *testing.T) {
		var a Answer
		assert.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &a))
		assert.Equal(t, AnswerMultiChoice, a.Kind)
		assert.Equal(t, []string{"a", "b"}, a.Selections)
	})

	t.Run("other shapes are rejected", func(t *testing.T) {
		var a Answer
		assert.Error(t, json.Unmarshal([]byte(`42`), &a))
		assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &a))
	})

	t.Run("choice marshals as a bare string", func(t *testing.T) {
		out, err := json.Marshal(ChoiceAnswer("A"))
		assert.NoError(t, err)
		assert.Equal(t, `"A"`, string(out))
	})

	t.Run("multi choice marshals as an array", func(t *testing.T) {
		out, err := json.Marshal(MultiChoiceAnswer([]string{"a", "b"}))
		assert.NoError(t, err)
		assert.Equal(t, `["a","b"]`, string(out))

		out, err = json.Marshal(MultiChoiceAnswer(nil))
		assert.NoError(t, err)
		assert.Equal(t, `[]`, string(out))
	})
}

func TestAnswerResolve(t *testing.T) {
	t.Run("single value widens for checkbox questions", func(t *testing.T) {
		a := TextAnswer("only").Resolve(QuestionCheckbox)
		assert.Equal(t, AnswerMultiChoice, a.Kind)
		assert.Equal(t, []string{"only"}, a.Selections)

		a = TextAnswer("").Resolve(QuestionCheckbox)
		assert.Equal(t, AnswerMultiChoice, a.Kind)
		assert.Empty(t, a.Selections)
	})

	t.Run("array narrows for radio questions", func(t *testing.T) {
		a := MultiChoiceAnswer([]string{"first", "second"}).Resolve(QuestionRadio)
		assert.Equal(t, AnswerChoice, a.Kind)
		assert.Equal(t, "first", a.Text)

		a = MultiChoiceAnswer(nil).Resolve(QuestionDropdown)
		assert.Equal(t, AnswerChoice, a.Kind)
		assert.Equal(t, "", a.Text)
	})

	t.Run("array flattens for text questions", func(t *testing.T) {
		a := MultiChoiceAnswer([]string{"a", "b"}).Resolve(QuestionParagraph)
		assert.Equal(t, AnswerText, a.Kind)
		assert.Equal(t, "a; b", a.Text)
	})

	t.Run("string stays text for text questions", func(t *testing.T) {
		a := TextAnswer("hello").Resolve(QuestionShortText)
		assert.Equal(t, AnswerText, a.Kind)
		assert.Equal(t, "hello", a.Text)
	})
}

func TestAnswerEmptyAndDisplay(t *testing.T) {
	assert.True(t, TextAnswer("").Empty())
	assert.True(t, TextAnswer("  ").Empty())
	assert.False(t, TextAnswer("x").Empty())
	assert.True(t, MultiChoiceAnswer(nil).Empty())
	assert.False(t, MultiChoiceAnswer([]string{"x"}).Empty())

	assert.Equal(t, "x", TextAnswer("x").Display())
	assert.Equal(t, "a; b", MultiChoiceAnswer([]string{"a", "b"}).Display())
}

func TestAnswerSetRoundTrip(t *testing.T) {
	set := AnswerSet{
		"q1": TextAnswer("Bob"),
		"q2": MultiChoiceAnswer([]string{"a"}),
	}

	raw, err := set.Value()
	assert.NoError(t, err)

	var decoded AnswerSet
	assert.NoError(t, decoded.Scan(raw))
	assert.Equal(t, "Bob", decoded["q1"].Text)
	assert.Equal(t, []string{"a"}, decoded["q2"].Selections)
}
