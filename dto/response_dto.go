package dto

import "github.com/formbase/forms-go/models"

type SubmitResponseDTO struct {
	Answers models.AnswerSet `json:"answers" binding:"required"`
}
