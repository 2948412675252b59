package ports

import (
	"context"

	"github.com/parsegasht/passenger/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking)
	NotifyBookingExpired(ctx context.Context, b *domain.Booking)
}
