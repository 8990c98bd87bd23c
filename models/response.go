package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type AnswerKind string

const (
	AnswerText        AnswerKind = "text"
	AnswerChoice      AnswerKind = "choice"
	AnswerMultiChoice AnswerKind = "multi_choice"
)

// Answer is the tagged value a respondent gives for one question: free text,
// a single picked option, or the picked set of a checkbox question. On the
// wire and in storage it stays the compact form clients send, a bare string
// or an array of strings.
type Answer struct {
	Kind       AnswerKind
	Text       string
	Selections []string
}

func TextAnswer(s string) Answer {
	return Answer{Kind: AnswerText, Text: s}
}

func ChoiceAnswer(s string) Answer {
	return Answer{Kind: AnswerChoice, Text: s}
}

func MultiChoiceAnswer(values []string) Answer {
	return Answer{Kind: AnswerMultiChoice, Selections: values}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Kind == AnswerMultiChoice {
		if a.Selections == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(a.Selections)
	}
	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		// Text vs choice is settled later against the question type.
		*a = TextAnswer(s)
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*a = MultiChoiceAnswer(values)
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings")
}

// Empty reports whether the answer carries no value, used for required checks.
func (a Answer) Empty() bool {
	if a.Kind == AnswerMultiChoice {
		return len(a.Selections) == 0
	}
	return strings.TrimSpace(a.Text) == ""
}

// Display renders the answer for review surfaces such as the CSV export.
func (a Answer) Display() string {
	if a.Kind == AnswerMultiChoice {
		return strings.Join(a.Selections, "; ")
	}
	return a.Text
}

// Resolve coerces the answer into the shape the question type demands.
func (a Answer) Resolve(t QuestionType) Answer {
	switch {
	case t.MultiValued():
		if a.Kind == AnswerMultiChoice {
			return a
		}
		if a.Empty() {
			return MultiChoiceAnswer(nil)
		}
		return MultiChoiceAnswer([]string{a.Text})
	case t.HasOptions():
		if a.Kind == AnswerMultiChoice {
			if len(a.Selections) == 0 {
				return ChoiceAnswer("")
			}
			return ChoiceAnswer(a.Selections[0])
		}
		return ChoiceAnswer(a.Text)
	default:
		if a.Kind == AnswerMultiChoice {
			return TextAnswer(strings.Join(a.Selections, "; "))
		}
		return TextAnswer(a.Text)
	}
}

// AnswerSet maps question ids to answers. Keys referencing questions that
// were later removed from the form are kept untouched; read paths skip them.
type AnswerSet map[string]Answer

func (s AnswerSet) Value() (driver.Value, error) {
	if s == nil {
		s = AnswerSet{}
	}
	return json.Marshal(s)
}

func (s *AnswerSet) Scan(value interface{}) error {
	if value == nil {
		*s = AnswerSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("unsupported type for AnswerSet: %T", value)
}

func (AnswerSet) GormDataType() string {
	return "jsonb"
}

type FormResponse struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	FormID      string    `gorm:"type:uuid;not null;index" json:"form_id"`
	Answers     AnswerSet `json:"answers"`
	SubmittedAt time.Time `json:"submitted_at"`
}
