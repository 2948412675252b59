package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/parsegasht/passenger/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking events to the dispatch operators' chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, operator notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.send(ctx, operatorText("*سفر جدید ثبت شد*", b))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.send(ctx, operatorText("*سفر تایید شد*", b))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	n.send(ctx, operatorText("*سفر لغو شد*", b))
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	n.send(ctx, operatorText("*سفر بدون تایید منقضی شد*", b))
}

func operatorText(title string, b *domain.Booking) string {
	return fmt.Sprintf(
		"%s\n\n"+"مسافر: %s (%s)\n"+"مسیر: %s → %s\n"+"تاریخ: %s\n"+"حرکت: %s\n"+"تعداد مسافر: %d\n"+"کد: `%s`",
		title,
		b.FullName(), b.Phone,
		b.OriginCity, b.DestinationCity,
		b.TripDate.Label(),
		b.TripStartText(),
		b.PassengerCount,
		b.ID,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
