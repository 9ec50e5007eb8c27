package domain

import "time"

// MaxFutureBookingsPerUser caps how many not-yet-started bookings a single
// user may hold at once. Enforced at creation only.
const MaxFutureBookingsPerUser = 2

type Booking struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	UserID    int64     `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Attendees int       `json:"attendees"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	RoomID    int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
	Attendees int
}

// Overlaps reports whether the booking's [start, end) interval intersects
// the given one. A booking ending exactly when another starts does not
// collide.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}
