package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tamiltaxi/models"

	"go.uber.org/zap"
)

// TelegramNotifier delivers booking summaries to a fixed Telegram chat.
// Without a token and chat id every dispatch is a silent no-op.
type TelegramNotifier struct {
	Token   string
	ChatID  string
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewTelegramNotifier builds a notifier against the public Telegram Bot API.
func NewTelegramNotifier(token, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		Token:   token,
		ChatID:  chatID,
		BaseURL: "https://api.telegram.org",
		Client:  &http.Client{Timeout: 8 * time.Second},
		Logger:  logger,
	}
}

func (t *TelegramNotifier) configured() bool {
	return t.Token != "" && t.ChatID != ""
}

// BookingCreated sends the booking summary, then a location share for each
// coordinate pair present. Every call is independently best-effort.
func (t *TelegramNotifier) BookingCreated(ctx context.Context, booking models.Booking) {
	if !t.configured() {
		return
	}

	if err := t.sendMessage(ctx, formatBookingMessage(booking)); err != nil {
		t.Logger.Warn("telegram sendMessage failed", zap.String("bookingId", booking.ID), zap.Error(err))
	}

	if lat, lng, ok := locationCoords(booking.PickupLocation); ok {
		if err := t.sendLocation(ctx, lat, lng); err != nil {
			t.Logger.Warn("telegram sendLocation failed for pickup", zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	if lat, lng, ok := locationCoords(booking.DropLocation); ok {
		if err := t.sendLocation(ctx, lat, lng); err != nil {
			t.Logger.Warn("telegram sendLocation failed for drop", zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
}

func (t *TelegramNotifier) sendMessage(ctx context.Context, text string) error {
	return t.post(ctx, "sendMessage", map[string]interface{}{
		"chat_id":                  t.ChatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	})
}

func (t *TelegramNotifier) sendLocation(ctx context.Context, lat, lng float64) error {
	return t.post(ctx, "sendLocation", map[string]interface{}{
		"chat_id":   t.ChatID,
		"latitude":  lat,
		"longitude": lng,
	})
}

func (t *TelegramNotifier) post(ctx context.Context, method string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", t.BaseURL, t.Token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram %s returned status %d: %s", method, resp.StatusCode, detail)
	}
	return nil
}
