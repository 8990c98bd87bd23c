package repositories

import (
	"github.com/formbase/forms-go/db"
	"github.com/formbase/forms-go/models"
	"github.com/google/uuid"
)

type FormRepo interface {
	Insert(form *models.Form) (string, error)
	FindByID(id string) (models.Form, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	ListByCreator(creatorID string) ([]models.Form, error)
}

type DBFormRepo struct{}

func (r *DBFormRepo) Insert(form *models.Form) (string, error) {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if err := db.DB.Create(form).Error; err != nil {
		return "", err
	}
	return form.ID, nil
}

func (r *DBFormRepo) FindByID(id string) (models.Form, error) {
	var form models.Form
	err := db.DB.First(&form, "id = ?", id).Error
	return form, err
}

// Update merges the given fields into the record and refreshes updated_at.
// A missing id matches no rows and is a successful no-op.
func (r *DBFormRepo) Update(id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return db.DB.Model(&models.Form{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DBFormRepo) Delete(id string) error {
	return db.DB.Delete(&models.Form{}, "id = ?", id).Error
}

func (r *DBFormRepo) ListByCreator(creatorID string) ([]models.Form, error) {
	var forms []models.Form
	err := db.DB.Where("creator_id = ?", creatorID).Order("created_at desc").Find(&forms).Error
	return forms, err
}
