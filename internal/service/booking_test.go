package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/parsegasht/passenger/internal/metrics"
	"github.com/parsegasht/passenger/internal/service/ports/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

// 2024-03-25 is 1403/01/06.
var fixedNow = time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC)

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	repo := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(repo, notifier, newTestMetrics(), time.UTC, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }

	return svc, repo, notifier
}

func validInput() domain.SubmitBookingInput {
	return domain.SubmitBookingInput{
		Date:   jalali.Date{Year: 1403, Month: 1, Day: 10},
		Time:   "09:15",
		Origin: domain.Place{Lat: 35.6892, Lng: 51.389, Address: "Azadi Sq", City: "Tehran"},
		Destinations: []domain.Place{
			{Lat: 34.6416, Lng: 50.8746, Address: "Qom terminal", City: "Qom"},
			{Lat: 32.6546, Lng: 51.668, Address: "Naqsh-e Jahan", City: "Isfahan"},
		},
		Passengers: 3,
		CarTypeID:  "sedan",
		FirstName:  "Ali",
		LastName:   "Rezaei",
		Phone:      "09121234567",
		Fare:       decimal.RequireFromString("1250000"),
	}
}

func TestBookingService_Submit(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "2024-03-29 09:15:00", booking.TripStartText())
	assert.Equal(t, domain.CarDisposalOff, booking.CarStatus)
	assert.Zero(t, booking.CarDisposalMinutes)
	assert.Equal(t, "Tehran", booking.OriginCity)
	assert.Equal(t, "Isfahan", booking.DestinationCity)
	assert.Equal(t, "Ali Rezaei", booking.FullName())

	require.Len(t, booking.Points, 3)
	assert.Equal(t, domain.TripPoint{Lat: "35.6892", Lon: "51.389", Address: "Azadi Sq", City: "Tehran"}, booking.Points[0])
	assert.Equal(t, "Qom", booking.Points[1].City)
	assert.Equal(t, "32.6546", booking.Points[2].Lat)

	assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.Bookings.WithLabelValues("pending")))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_DefaultClock(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	in := validInput()
	in.Time = ""

	booking, err := svc.Submit(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-29 08:00:00", booking.TripStartText())

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_CarDisposal(t *testing.T) {
	cases := []struct {
		name        string
		enabled     bool
		hours       int
		wantStatus  domain.CarStatus
		wantMinutes int
	}{
		{"enabled with hours", true, 3, domain.CarDisposalOn, 180},
		{"enabled without hours", true, 0, domain.CarDisposalOff, 0},
		{"disabled with hours", false, 5, domain.CarDisposalOff, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, notifier := newBookingService(t)

			repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

			in := validInput()
			in.CarStopEnabled = tc.enabled
			in.CarStopHours = tc.hours

			booking, err := svc.Submit(context.Background(), in)

			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, booking.CarStatus)
			assert.Equal(t, tc.wantMinutes, booking.CarDisposalMinutes)

			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestBookingService_Submit_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		modify func(in *domain.SubmitBookingInput)
		want   error
	}{
		{"no date", func(in *domain.SubmitBookingInput) { in.Date = jalali.Date{} }, domain.ErrDateRequired},
		{"no day", func(in *domain.SubmitBookingInput) { in.Date.Day = 0 }, domain.ErrDateRequired},
		{"day 31 of mehr", func(in *domain.SubmitBookingInput) { in.Date = jalali.Date{Year: 1403, Month: 7, Day: 31} }, domain.ErrInvalidDate},
		{"esfand 30 in common year", func(in *domain.SubmitBookingInput) { in.Date = jalali.Date{Year: 1403, Month: 12, Day: 30} }, domain.ErrInvalidDate},
		{"yesterday", func(in *domain.SubmitBookingInput) { in.Date = jalali.Date{Year: 1403, Month: 1, Day: 5} }, domain.ErrDateInPast},
		{"bad clock", func(in *domain.SubmitBookingInput) { in.Time = "8h" }, domain.ErrValidation},
		{"bad phone", func(in *domain.SubmitBookingInput) { in.Phone = "9121234567" }, domain.ErrValidation},
		{"no destinations", func(in *domain.SubmitBookingInput) { in.Destinations = nil }, domain.ErrValidation},
		{"too many passengers", func(in *domain.SubmitBookingInput) { in.Passengers = 9 }, domain.ErrValidation},
		{"no passengers", func(in *domain.SubmitBookingInput) { in.Passengers = 0 }, domain.ErrValidation},
		{"no car type", func(in *domain.SubmitBookingInput) { in.CarTypeID = "" }, domain.ErrValidation},
		{"no last name", func(in *domain.SubmitBookingInput) { in.LastName = "" }, domain.ErrValidation},
		{"origin off the map", func(in *domain.SubmitBookingInput) { in.Origin.Lat = 135 }, domain.ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newBookingService(t)

			in := validInput()
			tc.modify(&in)

			_, err := svc.Submit(context.Background(), in)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1.0, testutil.ToFloat64(svc.metrics.Rejections.WithLabelValues(rejectReason(err))))
		})
	}
}

func TestBookingService_Submit_TodayIsAllowed(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	in := validInput()
	in.Date = jalali.Date{Year: 1403, Month: 1, Day: 6}

	_, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_RepoError(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Submit(context.Background(), validInput())

	require.Error(t, err)
	assert.Equal(t, "خطا در ثبت سفر", domain.UserMessage(err))
}

func TestBookingService_Confirm(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	confirmed := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}
	repo.EXPECT().Confirm(mock.Anything, "b1").Return(confirmed, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, confirmed).Return()

	b, err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, confirmed, b)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	repo.EXPECT().Confirm(mock.Anything, "b1").Return(nil, domain.ErrBookingNotPending)

	_, err := svc.Confirm(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_Cancel(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	cancelled := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}
	repo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, cancelled).Return()

	b, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	repo.EXPECT().Cancel(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByPhone(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	list := []*domain.Booking{{ID: "b1"}, {ID: "b2"}}
	repo.EXPECT().ListByPhone(mock.Anything, "09121234567").Return(list, nil)

	res, err := svc.ListByPhone(context.Background(), "09121234567")

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestBookingService_ListByPhone_BadPhone(t *testing.T) {
	svc, _, _ := newBookingService(t)

	_, err := svc.ListByPhone(context.Background(), "+989121234567")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ExpireStale(t *testing.T) {
	svc, repo, notifier := newBookingService(t)

	expired := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusExpired},
		{ID: "b2", Status: domain.BookingStatusExpired},
	}
	repo.EXPECT().ExpireStarted(mock.Anything, fixedNow).Return(expired, nil)
	notifier.EXPECT().NotifyBookingExpired(mock.Anything, expired[0]).Return()
	notifier.EXPECT().NotifyBookingExpired(mock.Anything, expired[1]).Return()

	res, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(svc.metrics.Bookings.WithLabelValues("expired")))

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ExpireStale_Nothing(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	repo.EXPECT().ExpireStarted(mock.Anything, fixedNow).Return(nil, nil)

	res, err := svc.ExpireStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestBookingService_ExpireStale_Error(t *testing.T) {
	svc, repo, _ := newBookingService(t)

	repo.EXPECT().ExpireStarted(mock.Anything, fixedNow).Return(nil, errors.New("db error"))

	_, err := svc.ExpireStale(context.Background())

	assert.Error(t, err)
}
