package dto

// Name and capacity carry no binding tags: the service owns the
// "Room name cannot be empty" / "Room capacity must be positive" messages.
type CreateRoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// Attendees is unbound for the same reason: zero must reach the pipeline
// and fail with "Attendees must be positive".
type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	UserID    int64  `json:"user_id" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Attendees int    `json:"attendees"`
}
