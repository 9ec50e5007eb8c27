package ports

import (
	"context"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, room *domain.Room, booking *domain.Booking)
	NotifyBookingReminder(ctx context.Context, user *domain.User, room *domain.Room, booking *domain.Booking)
}
