package service

import (
	"context"
	"testing"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, u *domain.User) {
		u.ID = 11
	}).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{Email: "alice@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Username: "bob",
		Email:    "taken@example.com",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Equal(t, "user with this email already exists", err.Error())
}

func TestUserService_List(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	users := []*domain.User{{ID: 1, Username: "alice"}}
	repo.EXPECT().List(mock.Anything).Return(users, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, users, res)
}
