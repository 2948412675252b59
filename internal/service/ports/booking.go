package ports

import (
	"context"
	"time"

	"github.com/parsegasht/passenger/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	ExpireStarted(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
