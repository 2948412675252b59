package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/scheduler/mocks"
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

func TestScheduler_Tick_ReturnsExpiredBookings(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))

	start := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
	expired := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusExpired, TripStart: start, Phone: "09121234567"},
		{ID: "b2", Status: domain.BookingStatusExpired, TripStart: start, Phone: "09351234567"},
	}
	expirer.EXPECT().ExpireStale(mock.Anything).Return(expired, nil).Once()

	ids := s.tick(context.Background())

	assert.Equal(t, []string{"b1", "b2"}, ids)
}

func TestScheduler_Tick_NothingToExpire(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Once()

	assert.Empty(t, s.tick(context.Background()))
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Minute, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, errors.New("db error")).Once()

	assert.Nil(t, s.tick(context.Background()))
}

func TestScheduler_Start_SweepsImmediately(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	s := New(expirer, time.Hour, newTestLogger(t))

	expirer.EXPECT().ExpireStale(mock.Anything).
		Return([]*domain.Booking{{ID: "b1", Status: domain.BookingStatusExpired}}, nil).
		Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	expirer.AssertNumberOfCalls(t, "ExpireStale", 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockBookingExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, log)

	expirer.EXPECT().ExpireStale(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}
