package services

import (
	"errors"
	"time"

	"github.com/formbase/forms-go/dto"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/utils"
	"github.com/formbase/forms-go/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFormNotFound = errors.New("form not found")

type FormService struct {
	Repos *repositories.Repos
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{
		Repos: repos,
	}
}

// normalizeQuestions assigns ids where the builder left them blank, validates
// the type enum and keeps option lists only on types that use them.
func normalizeQuestions(questions []models.Question) (models.QuestionList, error) {
	normalized := make(models.QuestionList, 0, len(questions))
	for _, q := range questions {
		if !q.Type.Valid() {
			return nil, models.ErrInvalidQuestionType
		}
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Type.HasOptions() {
			for i := range q.Options {
				if q.Options[i].ID == "" {
					q.Options[i].ID = uuid.NewString()
				}
			}
		} else {
			q.Options = nil
		}
		normalized = append(normalized, q)
	}
	return normalized, nil
}

func (s *FormService) CreateForm(c *gin.Context, creatorID, creatorEmail string, input dto.CreateFormDTO) (models.Form, error) {
	questions, err := normalizeQuestions(input.Questions)
	if err != nil {
		return models.Form{}, err
	}

	now := time.Now().UTC()
	form := models.Form{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		CreatorID:    creatorID,
		CreatorEmail: creatorEmail,
		Questions:    questions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.Repos.Form.Insert(&form); err != nil {
		return models.Form{}, err
	}

	go utils.LogAuditWithConsole(c, "create", "form", form.ID, nil, form, "", s.Repos.Audit)
	return form, nil
}

func (s *FormService) GetForm(id string) (models.Form, error) {
	form, err := s.Repos.Form.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Form{}, ErrFormNotFound
		}
		return models.Form{}, err
	}
	return form, nil
}

func (s *FormService) GetFormsByCreator(creatorID string) ([]models.Form, error) {
	return s.Repos.Form.ListByCreator(creatorID)
}

// UpdateForm merges the provided fields into the form. The id, creator
// identity and creation time are immutable and have no update path here.
// Updating an unknown id succeeds without effect.
func (s *FormService) UpdateForm(c *gin.Context, id string, input dto.UpdateFormDTO) error {
	fields := map[string]interface{}{}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Questions != nil {
		questions, err := normalizeQuestions(*input.Questions)
		if err != nil {
			return err
		}
		fields["questions"] = questions
	}
	if len(fields) == 0 {
		return nil
	}

	oldForm, err := s.Repos.Form.FindByID(id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.Repos.Form.Update(id, fields); err != nil {
		return err
	}

	if oldForm.ID != "" {
		go utils.LogAuditWithConsole(c, "update", "form", id, oldForm, fields, "", s.Repos.Audit)
	}
	return nil
}

// DeleteForm removes the form and every response collected for it. Responses
// go first so no reader can observe a deleted form with surviving responses.
// Deleting an unknown id is a no-op, which also makes the call idempotent.
func (s *FormService) DeleteForm(c *gin.Context, id string) error {
	oldForm, err := s.Repos.Form.FindByID(id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err := s.Repos.Response.DeleteAllByForm(id); err != nil {
		return err
	}
	if err := s.Repos.Form.Delete(id); err != nil {
		return err
	}

	if oldForm.ID != "" {
		go utils.LogAuditWithConsole(c, "delete", "form", id, oldForm, nil, "", s.Repos.Audit)
	}
	return nil
}

// SubmitResponse records a respondent's answers. The id and submission time
// are always assigned server-side; answer values are coerced against the
// form's current question types, and keys referencing questions that no
// longer exist are stored untouched.
func (s *FormService) SubmitResponse(formID string, input dto.SubmitResponseDTO) (models.FormResponse, error) {
	form, err := s.GetForm(formID)
	if err != nil {
		return models.FormResponse{}, err
	}

	answers := models.AnswerSet{}
	for qid, answer := range input.Answers {
		if question, ok := form.QuestionByID(qid); ok {
			answers[qid] = answer.Resolve(question.Type)
		} else {
			answers[qid] = answer
		}
	}

	resp := models.FormResponse{
		FormID:  form.ID,
		Answers: answers,
	}
	if _, err := s.Repos.Response.Insert(&resp); err != nil {
		return models.FormResponse{}, err
	}

	websocket.PublishResponse(resp)
	return resp, nil
}

func (s *FormService) GetResponsesByForm(formID string) ([]models.FormResponse, error) {
	return s.Repos.Response.ListByForm(formID)
}
