package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomService_Create_Success(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, r *domain.Room) {
		r.ID = 3
	}).Return(nil)

	room, err := svc.Create(context.Background(), domain.CreateRoomInput{Name: "Zasedacka A", Capacity: 8})

	require.NoError(t, err)
	assert.Equal(t, int64(3), room.ID)
	assert.Equal(t, "Zasedacka A", room.Name)
	assert.Equal(t, 8, room.Capacity)
	assert.False(t, room.CreatedAt.IsZero())
}

func TestRoomService_Create_EmptyName(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{Name: "", Capacity: 8})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomNameEmpty)
	assert.Equal(t, "Room name cannot be empty", err.Error())
}

func TestRoomService_Create_ZeroCapacity(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{Name: "Zasedacka A", Capacity: 0})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRoomCapacityInvalid)
	assert.Equal(t, "Room capacity must be positive", err.Error())
}

func TestRoomService_Create_NegativeCapacity(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{Name: "Zasedacka A", Capacity: -1})

	assert.ErrorIs(t, err, domain.ErrRoomCapacityInvalid)
}

func TestRoomService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Create(context.Background(), domain.CreateRoomInput{Name: "Zasedacka A", Capacity: 8})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create room")
}

func TestRoomService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	repo.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrRoomNotFound)

	_, err := svc.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_List(t *testing.T) {
	repo := mocks.NewMockRoomRepo(t)
	svc := NewRoomService(repo)

	rooms := []*domain.Room{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	repo.EXPECT().List(mock.Anything).Return(rooms, nil)

	res, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, rooms, res)
}
