package repositories

import (
	"github.com/formbase/forms-go/db"
	"github.com/formbase/forms-go/models"
	"github.com/google/uuid"
)

type UserRepo interface {
	Create(user *models.User) error
	FindByEmail(email string) (models.User, error)
	FindByID(uid string) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) Create(user *models.User) error {
	if user.UID == "" {
		user.UID = uuid.NewString()
	}
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) FindByID(uid string) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, "uid = ?", uid).Error
	return user, err
}
