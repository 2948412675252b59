package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/jalali"
	"github.com/parsegasht/passenger/internal/metrics"
	"github.com/parsegasht/passenger/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

var iranMobile = regexp.MustCompile(`^09\d{9}$`)

// NewValidator returns a validator that knows the iran_mobile tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("iran_mobile", func(fl validator.FieldLevel) bool {
		return iranMobile.MatchString(fl.Field().String())
	})
	return v
}

type BookingService struct {
	bookingRepo ports.BookingRepo
	notifier    ports.BookingNotifier
	validate    *validator.Validate
	metrics     *metrics.Metrics
	loc         *time.Location
	now         func() time.Time
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	notifier ports.BookingNotifier,
	m *metrics.Metrics,
	loc *time.Location,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		validate:    NewValidator(),
		metrics:     m,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *BookingService) Submit(ctx context.Context, in domain.SubmitBookingInput) (*domain.Booking, error) {
	booking, err := s.submit(ctx, in)
	if reason := rejectReason(err); reason != "" {
		s.metrics.Rejections.WithLabelValues(reason).Inc()
	}
	return booking, err
}

func rejectReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrDateRequired):
		return "date_required"
	case errors.Is(err, domain.ErrDateConversion):
		return "date_conversion"
	case errors.Is(err, domain.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, domain.ErrDateInPast):
		return "date_in_past"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return ""
	}
}

func (s *BookingService) submit(ctx context.Context, in domain.SubmitBookingInput) (*domain.Booking, error) {
	if in.Date.IsZero() {
		return nil, domain.ErrDateRequired
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	// выбор даты ограничен календарём: длина месяца и не раньше сегодня
	if !in.Date.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidDate, in.Date)
	}

	now := s.now().In(s.loc)
	if in.Date.Before(jalali.FromTime(now)) {
		return nil, domain.ErrDateInPast
	}

	clock := in.Time
	if clock == "" {
		clock = DefaultTripClock
	}

	start, err := TripStart(in.Date, clock, s.loc)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		Status:          domain.BookingStatusPending,
		TripDate:        in.Date,
		TripStart:       start,
		PassengerCount:  in.Passengers,
		DriverFood:      in.DriverFood,
		ReturnTrip:      in.ReturnTrip,
		CarStatus:       domain.CarDisposalOff,
		CarTypeID:       in.CarTypeID,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		Phone:           in.Phone,
		Points:          tripPoints(in.Origin, in.Destinations),
		OriginCity:      in.Origin.City,
		DestinationCity: in.Destinations[len(in.Destinations)-1].City,
		Fare:            in.Fare,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	if in.CarStopEnabled {
		booking.CarDisposalMinutes = in.CarStopHours * 60
		if in.CarStopHours > 0 {
			booking.CarStatus = domain.CarDisposalOn
		}
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.metrics.Bookings.WithLabelValues(string(booking.Status)).Inc()

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("trip_date", booking.TripDate.String()),
		logger.String("trip_start", booking.TripStartText()),
		logger.Int("points", len(booking.Points)),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func tripPoints(origin domain.Place, destinations []domain.Place) []domain.TripPoint {
	points := make([]domain.TripPoint, 0, len(destinations)+1)
	for _, p := range append([]domain.Place{origin}, destinations...) {
		points = append(points, domain.TripPoint{
			Lat:     strconv.FormatFloat(p.Lat, 'f', -1, 64),
			Lon:     strconv.FormatFloat(p.Lng, 'f', -1, 64),
			Address: p.Address,
			City:    p.City,
		})
	}
	return points
}

func (s *BookingService) Confirm(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Confirm(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("confirm booking: %w", err)
	}
	s.metrics.Bookings.WithLabelValues(string(booking.Status)).Inc()

	s.logger.Info("booking confirmed", logger.String("booking_id", id))

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	s.metrics.Bookings.WithLabelValues(string(booking.Status)).Inc()

	s.logger.Info("booking cancelled", logger.String("booking_id", id))

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error) {
	if !iranMobile.MatchString(phone) {
		return nil, fmt.Errorf("%w: phone must look like 09xxxxxxxxx", domain.ErrValidation)
	}
	return s.bookingRepo.ListByPhone(ctx, phone)
}

// ExpireStale expires pending bookings whose trip has already started.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.bookingRepo.ExpireStarted(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.metrics.Bookings.WithLabelValues(string(domain.BookingStatusExpired)).Add(float64(len(expired)))
		s.logger.Info("stale bookings expired",
			logger.Int("count", len(expired)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifier.NotifyBookingExpired(ctx, b)
	}
}
