package domain

import "errors"

var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrUserNotFound = errors.New("User not found")
)

// Booking rule violations. The message text is part of the API contract:
// clients match on it verbatim, so these stay word for word.
var (
	ErrAttendeesNotPositive = errors.New("Attendees must be positive")
	ErrCapacityExceeded     = errors.New("Capacity exceeded")
	ErrInvalidInterval      = errors.New("End time must be after start time")
	ErrWeekendNotAllowed    = errors.New("Bookings not allowed on weekends")
	ErrUserBookingLimit     = errors.New("too many bookings")
	ErrRoomAlreadyBooked    = errors.New("Room is already booked")
)

var (
	ErrRoomNameEmpty       = errors.New("Room name cannot be empty")
	ErrRoomCapacityInvalid = errors.New("Room capacity must be positive")
)

var (
	ErrEmailTaken = errors.New("user with this email already exists")
)

var (
	ErrValidation = errors.New("validation error")
)
