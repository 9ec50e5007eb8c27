package scheduler

import (
	"context"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type BookingReminder interface {
	RemindUpcoming(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// Scheduler periodically reminds users of bookings about to start. The
// reminded window advances monotonically, so each booking is picked up at
// most once per process lifetime.
type Scheduler struct {
	bookingService BookingReminder
	interval       time.Duration
	lead           time.Duration
	logger         logger.Logger
	horizon        time.Time
}

func New(
	bookingService BookingReminder,
	interval time.Duration,
	lead time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		lead:           lead,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.horizon = time.Now().UTC()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("lead", s.lead),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	to := time.Now().UTC().Add(s.lead)
	if !to.After(s.horizon) {
		return
	}

	reminded, err := s.bookingService.RemindUpcoming(ctx, s.horizon, to)
	if err != nil {
		s.logger.Error("failed to send booking reminders",
			logger.String("error", err.Error()),
		)
		return
	}
	s.horizon = to

	for _, b := range reminded {
		s.logger.Info("booking reminder sent",
			logger.Int64("booking_id", b.ID),
			logger.Int64("user_id", b.UserID),
			logger.Int64("room_id", b.RoomID),
		)
	}
}
