package services_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/formbase/forms-go/dto"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/repositories/mock_repositories"
	"github.com/formbase/forms-go/services"
	"github.com/formbase/forms-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"gorm.io/gorm"
)

func setupFormMocks(t *testing.T) (*services.FormService,
	*mock_repositories.MockFormRepo,
	*mock_repositories.MockResponseRepo,
	*gin.Context) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	mockResponse := mock_repositories.NewMockResponseRepo(ctrl)

	repos := &repositories.Repos{
		Form:     mockForm,
		Response: mockResponse,
	}

	svc := services.NewFormService(repos)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	// mock utils globally
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}

	return svc, mockForm, mockResponse, c
}

func TestFormServiceCRUD(t *testing.T) {
	svc, mockForm, mockResponse, c := setupFormMocks(t)

	t.Run("CreateForm success", func(t *testing.T) {
		input := dto.CreateFormDTO{
			Title:       "Event Signup",
			Description: "Spring meetup",
			Questions: []models.Question{
				{Type: models.QuestionShortText, Title: "Your name", Required: true},
				{Type: models.QuestionRadio, Title: "Attending?", Options: []models.QuestionOption{{Text: "Yes"}, {Text: "No"}}},
			},
		}

		var inserted models.Form
		mockForm.EXPECT().Insert(gomock.Any()).DoAndReturn(func(f *models.Form) (string, error) {
			inserted = *f
			return f.ID, nil
		})

		form, err := svc.CreateForm(c, "creator-1", "alice@test.com", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if form.ID == "" {
			t.Fatal("expected generated form id")
		}
		if !form.CreatedAt.Equal(form.UpdatedAt) {
			t.Fatalf("expected created_at == updated_at, got %v and %v", form.CreatedAt, form.UpdatedAt)
		}
		if form.CreatorID != "creator-1" || form.CreatorEmail != "alice@test.com" {
			t.Fatalf("creator identity not recorded: %+v", form)
		}
		for _, q := range inserted.Questions {
			if q.ID == "" {
				t.Fatal("expected question ids to be assigned")
			}
		}
		for _, opt := range inserted.Questions[1].Options {
			if opt.ID == "" {
				t.Fatal("expected option ids to be assigned")
			}
		}
	})

	t.Run("CreateForm rejects unknown question type", func(t *testing.T) {
		input := dto.CreateFormDTO{
			Title:     "Broken",
			Questions: []models.Question{{Type: "SLIDER", Title: "Rate"}},
		}

		_, err := svc.CreateForm(c, "creator-1", "alice@test.com", input)
		if !errors.Is(err, models.ErrInvalidQuestionType) {
			t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
		}
	})

	t.Run("CreateForm strips options from text questions", func(t *testing.T) {
		input := dto.CreateFormDTO{
			Title: "Odd",
			Questions: []models.Question{
				{Type: models.QuestionParagraph, Title: "Notes", Options: []models.QuestionOption{{Text: "junk"}}},
			},
		}

		mockForm.EXPECT().Insert(gomock.Any()).DoAndReturn(func(f *models.Form) (string, error) {
			if f.Questions[0].Options != nil {
				t.Fatal("expected options stripped from paragraph question")
			}
			return f.ID, nil
		})

		if _, err := svc.CreateForm(c, "creator-1", "alice@test.com", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("GetForm maps missing record", func(t *testing.T) {
		mockForm.EXPECT().FindByID("missing").Return(models.Form{}, gorm.ErrRecordNotFound)

		_, err := svc.GetForm("missing")
		if !errors.Is(err, services.ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})

	t.Run("UpdateForm merges only provided fields", func(t *testing.T) {
		oldForm := models.Form{ID: "form-1", Title: "Old"}
		newTitle := "New title"
		input := dto.UpdateFormDTO{Title: &newTitle}

		mockForm.EXPECT().FindByID("form-1").Return(oldForm, nil)
		mockForm.EXPECT().Update("form-1", gomock.Any()).DoAndReturn(func(id string, fields map[string]interface{}) error {
			if len(fields) != 1 {
				t.Fatalf("expected a single field, got %v", fields)
			}
			if fields["title"] != "New title" {
				t.Fatalf("unexpected title: %v", fields["title"])
			}
			return nil
		})

		if err := svc.UpdateForm(c, "form-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpdateForm with no fields is a no-op", func(t *testing.T) {
		if err := svc.UpdateForm(c, "form-1", dto.UpdateFormDTO{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpdateForm on unknown id succeeds without effect", func(t *testing.T) {
		newTitle := "Whatever"
		mockForm.EXPECT().FindByID("ghost").Return(models.Form{}, gorm.ErrRecordNotFound)
		mockForm.EXPECT().Update("ghost", gomock.Any()).Return(nil)

		if err := svc.UpdateForm(c, "ghost", dto.UpdateFormDTO{Title: &newTitle}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpdateForm rejects invalid replacement questions", func(t *testing.T) {
		bad := []models.Question{{Type: "SLIDER", Title: "Rate"}}
		err := svc.UpdateForm(c, "form-1", dto.UpdateFormDTO{Questions: &bad})
		if !errors.Is(err, models.ErrInvalidQuestionType) {
			t.Fatalf("expected ErrInvalidQuestionType, got %v", err)
		}
	})

	t.Run("DeleteForm removes responses before the form", func(t *testing.T) {
		form := models.Form{ID: "form-1", Title: "Doomed"}
		mockForm.EXPECT().FindByID("form-1").Return(form, nil)
		gomock.InOrder(
			mockResponse.EXPECT().DeleteAllByForm("form-1").Return(nil),
			mockForm.EXPECT().Delete("form-1").Return(nil),
		)

		if err := svc.DeleteForm(c, "form-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("DeleteForm on unknown id is a no-op", func(t *testing.T) {
		mockForm.EXPECT().FindByID("ghost").Return(models.Form{}, gorm.ErrRecordNotFound)
		mockResponse.EXPECT().DeleteAllByForm("ghost").Return(nil)
		mockForm.EXPECT().Delete("ghost").Return(nil)

		if err := svc.DeleteForm(c, "ghost"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubmitResponse(t *testing.T) {
	svc, mockForm, mockResponse, _ := setupFormMocks(t)

	form := models.Form{
		ID: "form-1",
		Questions: models.QuestionList{
			{ID: "q1", Type: models.QuestionShortText, Title: "Name"},
			{ID: "q2", Type: models.QuestionRadio, Title: "Pick one", Options: []models.QuestionOption{{ID: "o1", Text: "A"}}},
			{ID: "q3", Type: models.QuestionCheckbox, Title: "Pick many"},
		},
	}

	t.Run("answers are coerced against question types", func(t *testing.T) {
		mockForm.EXPECT().FindByID("form-1").Return(form, nil)
		mockResponse.EXPECT().Insert(gomock.Any()).DoAndReturn(func(r *models.FormResponse) (string, error) {
			if r.Answers["q1"].Kind != models.AnswerText {
				t.Fatalf("q1 should resolve to text, got %v", r.Answers["q1"].Kind)
			}
			if r.Answers["q2"].Kind != models.AnswerChoice {
				t.Fatalf("q2 should resolve to choice, got %v", r.Answers["q2"].Kind)
			}
			if r.Answers["q3"].Kind != models.AnswerMultiChoice {
				t.Fatalf("q3 should resolve to multi choice, got %v", r.Answers["q3"].Kind)
			}
			r.ID = "resp-1"
			return r.ID, nil
		})

		input := dto.SubmitResponseDTO{Answers: models.AnswerSet{
			"q1": models.TextAnswer("Bob"),
			"q2": models.TextAnswer("A"),
			"q3": models.TextAnswer("only one"),
		}}

		resp, err := svc.SubmitResponse("form-1", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.FormID != "form-1" {
			t.Fatalf("expected form id on response, got %q", resp.FormID)
		}
	})

	t.Run("keys without a matching question are kept as sent", func(t *testing.T) {
		mockForm.EXPECT().FindByID("form-1").Return(form, nil)
		mockResponse.EXPECT().Insert(gomock.Any()).DoAndReturn(func(r *models.FormResponse) (string, error) {
			stale, ok := r.Answers["gone"]
			if !ok {
				t.Fatal("expected stale answer key to survive")
			}
			if stale.Text != "orphan" {
				t.Fatalf("stale answer changed: %+v", stale)
			}
			return "resp-2", nil
		})

		input := dto.SubmitResponseDTO{Answers: models.AnswerSet{
			"gone": models.TextAnswer("orphan"),
		}}

		if _, err := svc.SubmitResponse("form-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown form is rejected", func(t *testing.T) {
		mockForm.EXPECT().FindByID("ghost").Return(models.Form{}, gorm.ErrRecordNotFound)

		_, err := svc.SubmitResponse("ghost", dto.SubmitResponseDTO{Answers: models.AnswerSet{}})
		if !errors.Is(err, services.ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})
}
