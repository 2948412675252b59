package scheduler

import (
	"context"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingExpirer interface {
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically expires pending bookings whose trip has started.
// The first sweep runs on Start, so trips that began while the service
// was down are closed without waiting a full interval.
type Scheduler struct {
	bookingService bookingExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one sweep and returns the ids of the bookings it expired.
func (s *Scheduler) tick(ctx context.Context) []string {
	expired, err := s.bookingService.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale bookings",
			logger.String("error", err.Error()),
		)
		return nil
	}
	if len(expired) == 0 {
		return nil
	}

	ids := make([]string, 0, len(expired))

	for _, b := range expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("trip_start", b.TripStartText()),
			logger.String("phone", b.Phone),
		)
		ids = append(ids, b.ID)
	}

	s.logger.Info("stale bookings expired",
		logger.Int("count", len(ids)),
	)

	return ids
}
