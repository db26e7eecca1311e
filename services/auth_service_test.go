package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gather.link/models"
	"gather.link/repositories"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

var _ repositories.IUserRepository = (*fakeUserRepo)(nil)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	return &AuthService{users: &fakeUserRepo{byEmail: map[string]*models.User{
		"admin@example.com": {
			BaseModel:    models.BaseModel{ID: 1},
			Name:         "Admin",
			Email:        "admin@example.com",
			PasswordHash: string(hash),
		},
	}}}
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Login(context.Background(), "admin@example.com", "correct horse")

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")

	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

// Unknown email and wrong password are indistinguishable to the caller.
func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "correct horse")

	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
