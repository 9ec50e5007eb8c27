package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/service/ports"
)

type RoomService struct {
	repo ports.RoomRepo
}

func NewRoomService(repo ports.RoomRepo) *RoomService {
	return &RoomService{repo: repo}
}

func (s *RoomService) Create(ctx context.Context, input domain.CreateRoomInput) (*domain.Room, error) {
	if input.Name == "" {
		return nil, domain.ErrRoomNameEmpty
	}
	if input.Capacity <= 0 {
		return nil, domain.ErrRoomCapacityInvalid
	}

	room := &domain.Room{
		Name:      input.Name,
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	return room, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}
