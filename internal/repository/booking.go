package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/JanCermakW/spravce-zasedacek/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking after re-checking the overlap and quota
// conditions inside a transaction. The room row lock serializes concurrent
// bookings for the same room, so the checks and the insert act as one unit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var roomID int64
	lockQuery := `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("lock room: %w", err)
	}

	var clash bool
	overlapQuery := `SELECT EXISTS (
					 	SELECT 1 FROM bookings
					 	WHERE room_id = $1 AND start_time < $3 AND end_time > $2
					 )`
	if err = tx.QueryRowContext(ctx, overlapQuery, b.RoomID, b.StartTime, b.EndTime).Scan(&clash); err != nil {
		return fmt.Errorf("overlap scan: %w", err)
	}
	if clash {
		return domain.ErrRoomAlreadyBooked
	}

	var future int
	countQuery := `SELECT COUNT(*) FROM bookings
				   WHERE user_id = $1 AND start_time > $2`
	if err = tx.QueryRowContext(ctx, countQuery, b.UserID, time.Now().UTC()).Scan(&future); err != nil {
		return fmt.Errorf("count future bookings: %w", err)
	}
	if future >= domain.MaxFutureBookingsPerUser {
		return domain.ErrUserBookingLimit
	}

	insertQuery := `INSERT INTO bookings (room_id, user_id, start_time, end_time, attendees, created_at)
					VALUES ($1, $2, $3, $4, $5, $6)
					RETURNING id`
	if err = tx.QueryRowContext(
		ctx, insertQuery,
		b.RoomID, b.UserID, b.StartTime, b.EndTime, b.Attendees, b.CreatedAt,
	).Scan(&b.ID); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

// HasOverlapping reports whether any booking for the room intersects
// [start, end). Half-open semantics: touching endpoints do not collide.
func (r *BookingRepository) HasOverlapping(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	query := `SELECT EXISTS (
			  	SELECT 1 FROM bookings
			  	WHERE room_id = $1 AND start_time < $3 AND end_time > $2
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, roomID, start, end)
	if err != nil {
		return false, fmt.Errorf("overlap scan: %w", err)
	}

	var clash bool
	if err = row.Scan(&clash); err != nil {
		return false, fmt.Errorf("scan overlap: %w", err)
	}

	return clash, nil
}

func (r *BookingRepository) CountFutureByUser(ctx context.Context, userID int64, now time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE user_id = $1 AND start_time > $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("count future bookings: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, room_id, user_id, start_time, end_time, attendees, created_at
			  FROM bookings
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	query := `SELECT id, room_id, user_id, start_time, end_time, attendees, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	query := `SELECT id, room_id, user_id, start_time, end_time, attendees, created_at
			  FROM bookings
			  WHERE start_time > $1 AND start_time <= $2
			  ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list upcoming bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.UserID,
			&b.StartTime, &b.EndTime, &b.Attendees, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
