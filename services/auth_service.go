package services

import (
	"context"
	"errors"

	"gather.link/models"
	"gather.link/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError is a typed service error.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "invalid email or password"
)

// IAuthService authenticates admins.
type IAuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type AuthService struct {
	users repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Login verifies the credentials and returns the user. The error is the same
// for unknown email and wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
