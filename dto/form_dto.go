package dto

import "github.com/formbase/forms-go/models"

type CreateFormDTO struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
}

// UpdateFormDTO carries only owner-editable fields. Identity and creation
// metadata are immutable after creation and have no counterpart here, so a
// client supplying them is ignored rather than rejected.
type UpdateFormDTO struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Questions   *[]models.Question `json:"questions,omitempty"`
}
