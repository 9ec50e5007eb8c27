package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/handler/dto"
	hmocks "github.com/JanCermakW/spravce-zasedacek/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockRoomSvc, *hmocks.MockUserSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	roomSvc := hmocks.NewMockRoomSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(roomSvc, userSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/rooms", h.CreateRoom)
		api.GET("/rooms", h.ListRooms)
		api.GET("/rooms/:id", h.GetRoom)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
	}

	return roomSvc, userSvc, bookingSvc, r
}

func decodeDetail(t *testing.T, body []byte) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Detail
}

// --- Rooms ---

func TestHandler_CreateRoom_Success(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	room := &domain.Room{ID: 1, Name: "Zasedacka A", Capacity: 8, CreatedAt: time.Now()}
	roomSvc.EXPECT().Create(mock.Anything, domain.CreateRoomInput{Name: "Zasedacka A", Capacity: 8}).Return(room, nil)

	body, _ := json.Marshal(dto.CreateRoomRequest{Name: "Zasedacka A", Capacity: 8})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Zasedacka A", resp.Name)
	assert.Equal(t, int64(1), resp.ID)
}

func TestHandler_CreateRoom_EmptyName(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	roomSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrRoomNameEmpty)

	body := []byte(`{"name":"","capacity":8}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Room name cannot be empty", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_CreateRoom_InvalidCapacity(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	roomSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrRoomCapacityInvalid)

	body := []byte(`{"name":"Zasedacka A","capacity":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/rooms", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Room capacity must be positive", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_GetRoom_Success(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	room := &domain.Room{ID: 5, Name: "Zasedacka B", Capacity: 12, CreatedAt: time.Now()}
	roomSvc.EXPECT().GetByID(mock.Anything, int64(5)).Return(room, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Capacity)
}

func TestHandler_GetRoom_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetRoom_NotFound(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	roomSvc.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrRoomNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_ListRooms_Success(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	rooms := []*domain.Room{
		{ID: 1, Name: "A", Capacity: 4, CreatedAt: time.Now()},
		{ID: 2, Name: "B", Capacity: 10, CreatedAt: time.Now()},
	}
	roomSvc.EXPECT().List(mock.Anything).Return(rooms, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListRooms_Empty(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	roomSvc.EXPECT().List(mock.Anything).Return([]*domain.Room{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	user := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()}
	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "alice", Email: "alice@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_CreateUser_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Username: "bob", Email: "taken@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user with this email already exists", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_ListUsers_Success(t *testing.T) {
	_, userSvc, _, r := setupRouter(t)

	users := []*domain.User{
		{ID: 1, Username: "alice", Email: "alice@example.com", CreatedAt: time.Now()},
	}
	userSvc.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: 1, RoomID: 2, UserID: 7, StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), Attendees: 3, CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().ListByUser(mock.Anything, int64(7)).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/7/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserBookings_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/bad-id/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func bookingBody(t *testing.T, attendees int) []byte {
	t.Helper()
	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	body, err := json.Marshal(dto.CreateBookingRequest{
		RoomID:    1,
		UserID:    2,
		StartTime: start.Format(time.RFC3339),
		EndTime:   start.Add(time.Hour).Format(time.RFC3339),
		Attendees: attendees,
	})
	require.NoError(t, err)
	return body
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	booking := &domain.Booking{
		ID:        10,
		RoomID:    1,
		UserID:    2,
		StartTime: time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 1, 6, 11, 0, 0, 0, time.UTC),
		Attendees: 4,
		CreatedAt: time.Now(),
	}
	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingBody(t, 4)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, 4, resp.Attendees)
}

func TestHandler_CreateBooking_InvalidStartTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"room_id":1,"user_id":2,"start_time":"not-a-date","end_time":"2025-01-06T11:00:00Z","attendees":4}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid start_time format, expected RFC3339", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_CreateBooking_RoomNotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrRoomNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingBody(t, 4)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Room not found", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_CreateBooking_UserNotFound(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingBody(t, 4)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_CreateBooking_RuleViolations(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"attendees", domain.ErrAttendeesNotPositive, "Attendees must be positive"},
		{"capacity", domain.ErrCapacityExceeded, "Capacity exceeded"},
		{"interval", domain.ErrInvalidInterval, "End time must be after start time"},
		{"weekend", domain.ErrWeekendNotAllowed, "Bookings not allowed on weekends"},
		{"user limit", domain.ErrUserBookingLimit, "too many bookings"},
		{"overlap", domain.ErrRoomAlreadyBooked, "Room is already booked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, bookingSvc, r := setupRouter(t)

			bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingBody(t, 4)))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.detail, decodeDetail(t, w.Body.Bytes()))
		})
	}
}

// Zero attendees must pass the binding and reach the service, which owns
// the message.
func TestHandler_CreateBooking_ZeroAttendeesReachesService(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Run(func(_ context.Context, input domain.CreateBookingInput) {
		assert.Zero(t, input.Attendees)
	}).Return(nil, domain.ErrAttendeesNotPositive)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(bookingBody(t, 0)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Attendees must be positive", decodeDetail(t, w.Body.Bytes()))
}

func TestHandler_ListBookings_Success(t *testing.T) {
	_, _, bookingSvc, r := setupRouter(t)

	bookings := []*domain.Booking{
		{ID: 1, RoomID: 1, UserID: 1, StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), Attendees: 2, CreatedAt: time.Now()},
		{ID: 2, RoomID: 2, UserID: 1, StartTime: time.Now(), EndTime: time.Now().Add(time.Hour), Attendees: 5, CreatedAt: time.Now()},
	}
	bookingSvc.EXPECT().List(mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	roomSvc, _, _, r := setupRouter(t)

	roomSvc.EXPECT().GetByID(mock.Anything, int64(1)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeDetail(t, w.Body.Bytes()))
}
