package notification

import (
	"context"
	"fmt"

	"github.com/kavenegar/kavenegar-go"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// SMSNotifier texts the passenger through Kavenegar. Without an API key it
// only logs.
type SMSNotifier struct {
	send   func(phone, text string) error
	logger logger.Logger
}

func NewSMSNotifier(apiKey, sender string, logger logger.Logger) *SMSNotifier {
	if apiKey == "" {
		logger.Warn("sms api key is empty, passenger notifications disabled")
		return &SMSNotifier{logger: logger}
	}

	api := kavenegar.New(apiKey)

	return &SMSNotifier{
		send: func(phone, text string) error {
			if _, err := api.Message.Send(sender, []string{phone}, text, nil); err != nil {
				switch err := err.(type) {
				case *kavenegar.APIError:
					return fmt.Errorf("kavenegar API error: %w", err)
				case *kavenegar.HTTPError:
					return fmt.Errorf("kavenegar HTTP error: %w", err)
				default:
					return fmt.Errorf("send sms: %w", err)
				}
			}
			return nil
		},
		logger: logger,
	}
}

func (n *SMSNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.notify(ctx, b, fmt.Sprintf(
		"%s عزیز، درخواست سفر شما برای %s ساعت %s ثبت شد.\nکد پیگیری: %s",
		b.FirstName, b.TripDate.Label(), b.TripStart.Format("15:04"), shortID(b.ID),
	))
}

func (n *SMSNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.notify(ctx, b, fmt.Sprintf(
		"سفر شما از %s به %s در تاریخ %s تایید شد.",
		b.OriginCity, b.DestinationCity, b.TripDate.Label(),
	))
}

func (n *SMSNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	n.notify(ctx, b, fmt.Sprintf(
		"سفر شما در تاریخ %s لغو شد.\nکد پیگیری: %s",
		b.TripDate.Label(), shortID(b.ID),
	))
}

func (n *SMSNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	n.notify(ctx, b, fmt.Sprintf(
		"درخواست سفر شما در تاریخ %s تایید نشد و منقضی شد.",
		b.TripDate.Label(),
	))
}

func (n *SMSNotifier) notify(ctx context.Context, b *domain.Booking, text string) {
	if n.send == nil {
		n.logger.Debug("sms skipped (provider disabled)", logger.String("booking_id", b.ID))
		return
	}

	if ctx.Err() != nil {
		n.logger.Debug("sms skipped (context cancelled)", logger.String("booking_id", b.ID))
		return
	}

	if err := n.send(b.Phone, text); err != nil {
		n.logger.Error("failed to send sms",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
