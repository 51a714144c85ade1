package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/worknest/staff/internal/models"
	"github.com/worknest/staff/internal/repository"
)

type AuthServiceTestSuite struct {
	ServiceTestSuite
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ServiceTestSuite.SetupTest()
	s.service = NewAuthService(repository.NewUserRepository(s.db))
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestCreateUserAndLogin() {
	user, err := s.service.CreateUser(CreateUserInput{Username: " hr ", Password: "password123"})
	s.Require().NoError(err)
	s.Equal("hr", user.Username)
	s.True(user.IsActive)
	s.NotEqual("password123", user.PasswordHash)

	loggedIn, err := s.service.Login(LoginInput{Username: "hr", Password: "password123"})
	s.Require().NoError(err)
	s.Equal(user.ID, loggedIn.ID)
	s.NotNil(loggedIn.LastLogin)

	stored, err := s.service.GetUser(user.ID)
	s.Require().NoError(err)
	s.NotNil(stored.LastLogin)
}

func (s *AuthServiceTestSuite) TestCreateUser_Validation() {
	_, err := s.service.CreateUser(CreateUserInput{Username: "hr", Password: "short"})
	s.True(errors.Is(err, ErrPasswordTooShort))

	_, err = s.service.CreateUser(CreateUserInput{Username: "  ", Password: "password123"})
	s.True(errors.Is(err, ErrUsernameRequired))

	_, err = s.service.CreateUser(CreateUserInput{Username: "hr", Password: "password123"})
	s.Require().NoError(err)
	_, err = s.service.CreateUser(CreateUserInput{Username: "hr", Password: "password456"})
	s.True(errors.Is(err, ErrUsernameTaken))
}

func (s *AuthServiceTestSuite) TestLogin_Failures() {
	_, err := s.service.Login(LoginInput{Username: "ghost", Password: "password123"})
	s.True(errors.Is(err, ErrInvalidCredentials))

	user, err := s.service.CreateUser(CreateUserInput{Username: "hr", Password: "password123"})
	s.Require().NoError(err)

	_, err = s.service.Login(LoginInput{Username: "hr", Password: "wrong-password"})
	s.True(errors.Is(err, ErrInvalidCredentials))

	s.Require().NoError(s.db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	_, err = s.service.Login(LoginInput{Username: "hr", Password: "password123"})
	s.True(errors.Is(err, ErrInactiveUser))
}

func (s *AuthServiceTestSuite) TestGetUser_NotFound() {
	_, err := s.service.GetUser(42)
	s.True(errors.Is(err, ErrUserNotFound))
}
