package notification

import (
	"context"

	"tamiltaxi/models"
)

// Service delivers operator-facing notifications. Implementations are
// best-effort: delivery failures are logged, never returned.
type Service interface {
	// BookingCreated announces a freshly persisted booking.
	BookingCreated(ctx context.Context, booking models.Booking)
}
