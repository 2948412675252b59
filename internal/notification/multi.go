package notification

import (
	"context"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/service/ports"
)

// Multi fans every event out to all notifiers in order.
type Multi []ports.BookingNotifier

func (m Multi) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCreated(ctx, b)
	}
}

func (m Multi) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingConfirmed(ctx, b)
	}
}

func (m Multi) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingCancelled(ctx, b)
	}
}

func (m Multi) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	for _, n := range m {
		n.NotifyBookingExpired(ctx, b)
	}
}
