package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, status, trip_year, trip_month, trip_day, trip_start,
	passenger_count, driver_food, return_trip, car_status, car_disposal_minutes,
	car_type_id, first_name, last_name, phone, trip_points,
	origin_city, destination_city, fare, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
	// loc is the zone trip_start is read back in; the column keeps only the instant.
	loc *time.Location
}

func NewBookingRepo(db *dbpg.DB, loc *time.Location) *BookingRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingRepository{
		db:  db,
		loc: loc,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	points, err := json.Marshal(b.Points)
	if err != nil {
		return fmt.Errorf("marshal trip points: %w", err)
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			          $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Status, b.TripDate.Year, b.TripDate.Month, b.TripDate.Day, b.TripStart,
		b.PassengerCount, b.DriverFood, b.ReturnTrip, b.CarStatus, b.CarDisposalMinutes,
		b.CarTypeID, b.FirstName, b.LastName, b.Phone, points,
		b.OriginCity, b.DestinationCity, b.Fare, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := r.scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE phone = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, phone)
	if err != nil {
		return nil, fmt.Errorf("list bookings by phone: %w", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *BookingRepository) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	return r.transition(ctx, id,
		[]domain.BookingStatus{domain.BookingStatusPending},
		domain.BookingStatusConfirmed,
		domain.ErrBookingNotPending,
	)
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	return r.transition(ctx, id,
		domain.ActiveStatuses,
		domain.BookingStatusCancelled,
		domain.ErrBookingClosed,
	)
}

// transition атомарно меняет статус, если текущий входит в from.
func (r *BookingRepository) transition(
	ctx context.Context,
	id string,
	from []domain.BookingStatus,
	to domain.BookingStatus,
	conflict error,
) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = ANY($3)
			  RETURNING ` + bookingColumns

	b, err := r.scanBooking(tx.QueryRowContext(ctx, query, id, to, pq.Array(from)))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update booking status: %w", err)
		}

		// бронь не найдена или статус не подходит
		var status string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, domain.ErrBookingNotFound
			}
			return nil, fmt.Errorf("check booking status: %w", scanErr)
		}
		return nil, conflict
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return b, nil
}

// ExpireStarted marks pending bookings whose trip start is before now as
// expired and returns them.
func (r *BookingRepository) ExpireStarted(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND trip_start < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("expire started: %w", err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b      domain.Booking
		points []byte
	)
	err := row.Scan(
		&b.ID, &b.Status, &b.TripDate.Year, &b.TripDate.Month, &b.TripDate.Day, &b.TripStart,
		&b.PassengerCount, &b.DriverFood, &b.ReturnTrip, &b.CarStatus, &b.CarDisposalMinutes,
		&b.CarTypeID, &b.FirstName, &b.LastName, &b.Phone, &points,
		&b.OriginCity, &b.DestinationCity, &b.Fare, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(points, &b.Points); err != nil {
		return nil, fmt.Errorf("unmarshal trip points: %w", err)
	}
	b.TripStart = b.TripStart.In(r.loc)

	return &b, nil
}

func (r *BookingRepository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
