package repositories

import (
	"time"

	"github.com/formbase/forms-go/db"
	"github.com/formbase/forms-go/models"
	"github.com/google/uuid"
)

type ResponseRepo interface {
	Insert(resp *models.FormResponse) (string, error)
	ListByForm(formID string) ([]models.FormResponse, error)
	DeleteAllByForm(formID string) error
}

type DBResponseRepo struct{}

// Insert always assigns the id and submission time server-side; anything the
// client supplied for either is discarded.
func (r *DBResponseRepo) Insert(resp *models.FormResponse) (string, error) {
	resp.ID = uuid.NewString()
	resp.SubmittedAt = time.Now().UTC()
	if err := db.DB.Create(resp).Error; err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (r *DBResponseRepo) ListByForm(formID string) ([]models.FormResponse, error) {
	var responses []models.FormResponse
	err := db.DB.Where("form_id = ?", formID).Order("submitted_at desc").Find(&responses).Error
	return responses, err
}

func (r *DBResponseRepo) DeleteAllByForm(formID string) error {
	return db.DB.Where("form_id = ?", formID).Delete(&models.FormResponse{}).Error
}
