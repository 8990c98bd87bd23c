package services_test

import (
	"testing"
	"time"

	"github.com/formbase/forms-go/dto"
	"github.com/formbase/forms-go/middleware"
	"github.com/formbase/forms-go/models"
	"github.com/formbase/forms-go/repositories"
	"github.com/formbase/forms-go/repositories/mock_repositories"
	"github.com/formbase/forms-go/services"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptrString(s string) *string { return &s }

func setupUserServiceMocks(t *testing.T) (*services.UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{
		User: mockUser,
	}
	svc := services.NewUserService(repos)
	return svc, mockUser
}

func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	input := dto.CreateUserInput{
		Email:    "alice@test.com",
		Password: "123456",
		FullName: ptrString("Alice"),
	}

	mockUser.EXPECT().FindByEmail("alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.NotEqual(t, "123456", u.Password)
		return nil
	})

	user, err := svc.RegisterUser(input)
	assert.NoError(t, err)
	assert.Equal(t, "alice@test.com", user.Email)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("admin@test.com").Return(models.User{UID: "u1"}, nil)

	input := dto.CreateUserInput{Email: "admin@test.com", Password: "123456"}
	_, err := svc.RegisterUser(input)
	assert.Equal(t, services.ErrEmailTaken, err)
}

func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	password := "123456"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := models.User{UID: "u1", Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(user models.User, exp time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser("bob@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob@test.com", u.Email)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	user := models.User{UID: "u1", Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().FindByEmail("bob@test.com").Return(user, nil)

	u, token, err := svc.LoginUser("bob@test.com", "wrong")
	assert.Equal(t, services.ErrInvalidCredentials, err)
	assert.Equal(t, models.User{}, u)
	assert.Empty(t, token)
}

func TestLoginUser_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByEmail("ghost@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser("ghost@test.com", "123456")
	assert.Equal(t, services.ErrInvalidCredentials, err)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().FindByID("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, err := svc.GetUser("ghost")
	assert.Equal(t, services.ErrUserNotFound, err)
}
