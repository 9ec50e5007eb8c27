package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
)

// ruleStore is the read-only slice of the booking repository the rules need.
type ruleStore interface {
	HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	CountFutureByUser(ctx context.Context, userID int64, now time.Time) (int, error)
}

// bookingCandidate carries everything a rule may inspect: the booking being
// created, its resolved room and user, the validation instant and the store.
type bookingCandidate struct {
	booking *domain.Booking
	room    *domain.Room
	user    *domain.User
	now     time.Time
	store   ruleStore
}

// A bookingRule accepts or rejects a candidate. Rules run in order and the
// first rejection wins; later rules are not evaluated.
type bookingRule func(ctx context.Context, c *bookingCandidate) error

var bookingRules = []bookingRule{
	checkAttendeesPositive,
	checkCapacity,
	checkInterval,
	checkWorkingDay,
	checkUserLimit,
	checkAvailability,
}

func checkAttendeesPositive(_ context.Context, c *bookingCandidate) error {
	if c.booking.Attendees <= 0 {
		return domain.ErrAttendeesNotPositive
	}
	return nil
}

func checkCapacity(_ context.Context, c *bookingCandidate) error {
	// attendees == capacity is allowed
	if c.booking.Attendees > c.room.Capacity {
		return domain.ErrCapacityExceeded
	}
	return nil
}

func checkInterval(_ context.Context, c *bookingCandidate) error {
	if !c.booking.EndTime.After(c.booking.StartTime) {
		return domain.ErrInvalidInterval
	}
	return nil
}

// checkWorkingDay looks at the start day only: a Friday booking running
// into Saturday is allowed.
func checkWorkingDay(_ context.Context, c *bookingCandidate) error {
	switch c.booking.StartTime.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.ErrWeekendNotAllowed
	}
	return nil
}

func checkUserLimit(ctx context.Context, c *bookingCandidate) error {
	count, err := c.store.CountFutureByUser(ctx, c.booking.UserID, c.now)
	if err != nil {
		return fmt.Errorf("count future bookings: %w", err)
	}
	if count >= domain.MaxFutureBookingsPerUser {
		return domain.ErrUserBookingLimit
	}
	return nil
}

func checkAvailability(ctx context.Context, c *bookingCandidate) error {
	booked, err := c.store.HasOverlapping(ctx, c.booking.RoomID, c.booking.StartTime, c.booking.EndTime)
	if err != nil {
		return fmt.Errorf("overlap scan: %w", err)
	}
	if booked {
		return domain.ErrRoomAlreadyBooked
	}
	return nil
}
