package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionTypeHelpers(t *testing.T) {
	assert.True(t, QuestionShortText.Valid())
	assert.True(t, QuestionDropdown.Valid())
	assert.False(t, QuestionType("SLIDER").Valid())

	assert.False(t, QuestionShortText.HasOptions())
	assert.False(t, QuestionParagraph.HasOptions())
	assert.True(t, QuestionRadio.HasOptions())
	assert.True(t, QuestionCheckbox.HasOptions())
	assert.True(t, QuestionDropdown.HasOptions())

	assert.True(t, QuestionCheckbox.MultiValued())
	assert.False(t, QuestionRadio.MultiValued())
	assert.False(t, QuestionDropdown.MultiValued())
}

func TestMissingRequired(t *testing.T) {
	form := Form{
		Questions: QuestionList{
			{ID: "q1", Type: QuestionShortText, Required: true},
			{ID: "q2", Type: QuestionRadio, Required: true},
			{ID: "q3", Type: QuestionParagraph},
			{ID: "q4", Type: QuestionCheckbox, Required: true},
		},
	}

	t.Run("all answered", func(t *testing.T) {
		missing := form.MissingRequired(AnswerSet{
			"q1": TextAnswer("Bob"),
			"q2": ChoiceAnswer("A"),
			"q4": MultiChoiceAnswer([]string{"x"}),
		})
		assert.Empty(t, missing)
	})

	t.Run("absent and blank answers count as missing", func(t *testing.T) {
		missing := form.MissingRequired(AnswerSet{
			"q1": TextAnswer("   "),
			"q4": MultiChoiceAnswer(nil),
		})
		assert.Equal(t, []string{"q1", "q2", "q4"}, missing)
	})

	t.Run("optional questions are never demanded", func(t *testing.T) {
		missing := form.MissingRequired(AnswerSet{
			"q1": TextAnswer("Bob"),
			"q2": ChoiceAnswer("A"),
			"q4": MultiChoiceAnswer([]string{"x"}),
		})
		assert.NotContains(t, missing, "q3")
	})
}

func TestQuestionByID(t *testing.T) {
	form := Form{Questions: QuestionList{{ID: "q1", Title: "Name"}}}

	q, ok := form.QuestionByID("q1")
	assert.True(t, ok)
	assert.Equal(t, "Name", q.Title)

	_, ok = form.QuestionByID("q2")
	assert.False(t, ok)
}
