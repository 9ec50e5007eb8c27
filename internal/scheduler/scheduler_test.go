package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/JanCermakW/spravce-zasedacek/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsReminders(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 50*time.Millisecond, 15*time.Minute, log)

	reminded := []*domain.Booking{
		{ID: 1, RoomID: 2, UserID: 3},
	}
	reminder.EXPECT().RemindUpcoming(mock.Anything, mock.Anything, mock.Anything).Return(reminded, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 50*time.Millisecond, 15*time.Minute, log)

	reminder.EXPECT().RemindUpcoming(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(reminder.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	log := newTestLogger(t)

	s := New(reminder, time.Second, 15*time.Minute, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

// Each tick reminds from the previous horizon, so the windows never
// overlap.
func TestScheduler_WindowsAdvance(t *testing.T) {
	reminder := mocks.NewMockBookingReminder(t)
	log := newTestLogger(t)

	s := New(reminder, 30*time.Millisecond, 15*time.Minute, log)

	var windows [][2]time.Time
	reminder.EXPECT().RemindUpcoming(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, from, to time.Time) {
			windows = append(windows, [2]time.Time{from, to})
		}).
		Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(windows), 2)
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1][1], windows[i][0])
	}
}
