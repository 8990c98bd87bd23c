package services

import (
	"errors"
	"time"

	"github.com/formbase/forms-go/dto"
	"github.com/formbase/forms-go/middleware"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrUserNotFound        = errors.New("user not found")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) RegisterUser(input dto.CreateUserInput) (models.User, error) {
	_, err := s.Repos.User.FindByEmail(input.Email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
	}
	if err := s.Repos.User.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) LoginUser(email, password string) (models.User, string, error) {
	user, err := s.Repos.User.FindByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *UserService) GetUser(uid string) (models.User, error) {
	user, err := s.Repos.User.FindByID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
