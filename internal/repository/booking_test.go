package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var columns = []string{
	"id", "status", "trip_year", "trip_month", "trip_day", "trip_start",
	"passenger_count", "driver_food", "return_trip", "car_status", "car_disposal_minutes",
	"car_type_id", "first_name", "last_name", "phone", "trip_points",
	"origin_city", "destination_city", "fare", "created_at", "updated_at",
}

var tehran = time.FixedZone("IRST", 3*3600+1800)

func newMockRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBookingRepo(&dbpg.DB{Master: db}, tehran), mock
}

// bookingRow mimics a postgres session in UTC: 08:00 Tehran comes back as 04:30Z.
func bookingRow(id string, status domain.BookingStatus) []driver.Value {
	return bookingRowAt(id, status, time.Date(2024, 3, 20, 4, 30, 0, 0, time.UTC))
}

func bookingRowAt(id string, status domain.BookingStatus, start time.Time) []driver.Value {
	return []driver.Value{
		id, string(status), 1403, 1, 1, start,
		2, true, false, string(domain.CarDisposalOff), 0,
		"sedan", "Ali", "Rezaei", "09121234567",
		[]byte(`[{"lat":"35.7","lon":"51.4","address":"Azadi","city":"Tehran"}]`),
		"Tehran", "Isfahan", "1250000", start, start,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	b := &domain.Booking{
		ID:        "b1",
		Status:    domain.BookingStatusPending,
		TripDate:  jalali.Date{Year: 1403, Month: 1, Day: 1},
		TripStart: time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC),
		Points:    []domain.TripPoint{{Lat: "35.7", Lon: "51.4"}},
		Fare:      decimal.NewFromInt(1250000),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(
			"b1", b.Status, 1403, 1, 1, b.TripStart,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b1", domain.BookingStatusPending)...))

	b, err := repo.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, jalali.Date{Year: 1403, Month: 1, Day: 1}, b.TripDate)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, "2024-03-20 08:00:00", b.TripStartText())
	require.Len(t, b.Points, 1)
	assert.Equal(t, "Tehran", b.Points[0].City)
	assert.True(t, decimal.NewFromInt(1250000).Equal(b.Fare))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_TripStartInCalendarZone(t *testing.T) {
	repo, mock := newMockRepo(t)

	// 1403/1/1 02:00 Tehran is still 1402/12/29 in UTC
	submitted := time.Date(2024, 3, 20, 2, 0, 0, 0, tehran)
	stored := submitted.UTC()
	require.Equal(t, 19, stored.Day())

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(bookingRowAt("b1", domain.BookingStatusPending, stored)...))

	b, err := repo.GetByID(context.Background(), "b1")

	require.NoError(t, err)
	assert.True(t, submitted.Equal(b.TripStart))
	assert.Equal(t, "2024-03-20 02:00:00", b.TripStartText())
	assert.Equal(t, b.TripDate, jalali.FromTime(b.TripStart))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ListByPhone(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE phone = $1")).
		WithArgs("09121234567").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(bookingRow("b1", domain.BookingStatusPending)...).
			AddRow(bookingRow("b2", domain.BookingStatusCancelled)...))

	res, err := repo.ListByPhone(context.Background(), "09121234567")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "b2", res[1].ID)
	for _, b := range res {
		assert.Equal(t, "2024-03-20 08:00:00", b.TripStartText())
	}
}

func TestBookingRepository_Confirm(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("b1", domain.BookingStatusConfirmed, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b1", domain.BookingStatusConfirmed)...))
	mock.ExpectCommit()

	b, err := repo.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, "2024-03-20 08:00:00", b.TripStartText())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Confirm_NotPending(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("b1", domain.BookingStatusConfirmed, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
	mock.ExpectRollback()

	_, err := repo.Confirm(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("b1", domain.BookingStatusCancelled, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ExpireStarted(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(domain.BookingStatusPending, domain.BookingStatusExpired, now).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(bookingRow("b1", domain.BookingStatusExpired)...))

	res, err := repo.ExpireStarted(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.BookingStatusExpired, res[0].Status)
	assert.Equal(t, tehran, res[0].TripStart.Location())
}
