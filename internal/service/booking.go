package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Book runs the candidate through the rule pipeline and persists it when
// every rule passes. Rule violations come back as the domain sentinels,
// unwrapped, so callers can match the message verbatim.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		RoomID:    input.RoomID,
		UserID:    input.UserID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Attendees: input.Attendees,
		CreatedAt: time.Now().UTC(),
	}

	candidate := &bookingCandidate{
		booking: booking,
		room:    room,
		user:    user,
		now:     time.Now().UTC(),
		store:   s.bookingRepo,
	}
	for _, rule := range bookingRules {
		if err = rule(ctx, candidate); err != nil {
			return nil, err
		}
	}

	// The repo re-checks overlap and quota inside a transaction holding the
	// room row lock, so two concurrent requests cannot both slip past the
	// pipeline.
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("room_id", booking.RoomID),
		logger.Int64("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, room, booking)

	return booking, nil
}

// RemindUpcoming notifies holders of bookings starting within (from, to].
func (s *BookingService) RemindUpcoming(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListStartingBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming bookings: %w", err)
	}

	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.Int64("user_id", b.UserID),
			)
			continue
		}

		room, err := s.roomRepo.GetByID(ctx, b.RoomID)
		if err != nil {
			s.logger.Error("failed to get room for reminder",
				logger.Int64("room_id", b.RoomID),
			)
			continue
		}

		s.notifier.NotifyBookingReminder(ctx, user, room, b)
	}

	return bookings, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
