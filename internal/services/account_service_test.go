package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/pkg/utils"
)

type fakeAccountRepo struct {
	users map[string]*db_models.User
	err   error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{users: map[string]*db_models.User{}}
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.Email] = user
	return nil
}

func TestCreateAccountAndLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	signUp := request_models.SignUpRequest{
		Username: "wanderer",
		Email:    "w@example.com",
		Password: "hunter22",
	}
	require.NoError(t, service.CreateAccount(context.Background(), signUp))

	stored := repo.users["w@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "w@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID.String(), claims.UserID)
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	req := request_models.SignUpRequest{Username: "a", Email: "a@example.com", Password: "secret1"}
	require.NoError(t, service.CreateAccount(context.Background(), req))

	err := service.CreateAccount(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeAccountRepo()
	service := NewAccountService(repo)

	_, err := service.Login(context.Background(), request_models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	require.NoError(t, service.CreateAccount(context.Background(), request_models.SignUpRequest{
		Username: "b", Email: "b@example.com", Password: "correct1",
	}))

	_, err = service.Login(context.Background(), request_models.LoginRequest{Email: "b@example.com", Password: "wrong111"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	repo.err = errFakeDown
	_, err = service.Login(context.Background(), request_models.LoginRequest{Email: "b@example.com", Password: "correct1"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
