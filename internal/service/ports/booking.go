package ports

import (
	"context"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	CountFutureByUser(ctx context.Context, userID int64, now time.Time) (int, error)
}
