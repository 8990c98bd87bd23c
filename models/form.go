package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type QuestionType string

const (
	QuestionShortText QuestionType = "SHORT_TEXT"
	QuestionParagraph QuestionType = "PARAGRAPH"
	QuestionRadio     QuestionType = "RADIO"
	QuestionCheckbox  QuestionType = "CHECKBOX"
	QuestionDropdown  QuestionType = "DROPDOWN"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionShortText, QuestionParagraph, QuestionRadio, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// HasOptions reports whether the question type carries an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case QuestionRadio, QuestionCheckbox, QuestionDropdown:
		return true
	}
	return false
}

// MultiValued reports whether a respondent may pick more than one value.
func (t QuestionType) MultiValued() bool {
	return t == QuestionCheckbox
}

type QuestionOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID       string           `json:"id"`
	Type     QuestionType     `json:"type"`
	Title    string           `json:"title"`
	Required bool             `json:"required"`
	Options  []QuestionOption `json:"options,omitempty"`
}

// QuestionList is stored as a single jsonb column so question order survives
// round trips without a join table.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	if q == nil {
		q = QuestionList{}
	}
	return json.Marshal(q)
}

func (q *QuestionList) Scan(value interface{}) error {
	if value == nil {
		*q = QuestionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	}
	return fmt.Errorf("unsupported type for QuestionList: %T", value)
}

func (QuestionList) GormDataType() string {
	return "jsonb"
}

var ErrInvalidQuestionType = errors.New("invalid question type")

type Form struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string       `gorm:"size:255" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	CreatorID    string       `gorm:"size:100;not null;index" json:"creator_id"`
	CreatorEmail string       `gorm:"size:100;not null" json:"creator_email"`
	Questions    QuestionList `json:"questions"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (f *Form) QuestionByID(id string) (Question, bool) {
	for _, q := range f.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// MissingRequired returns the ids of required questions the answer set does
// not cover. Validation of required coverage belongs to the submission
// surface, not the form service, so this is offered as a helper rather than
// enforced on insert.
func (f *Form) MissingRequired(answers AnswerSet) []string {
	var missing []string
	for _, q := range f.Questions {
		if !q.Required {
			continue
		}
		answer, ok := answers[q.ID]
		if !ok || answer.Empty() {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
