package booking

import (
	"context"

	"tamiltaxi/models"
)

// TripTypeLocalPackages is the trip type that books a predefined sightseeing
// package instead of an explicit pickup/drop pair.
const TripTypeLocalPackages = "Local Packages"

// Defaults applied when the payload omits the fields.
const (
	DefaultTripType = "One-way"
	DefaultCabType  = "Sedan"
)

// Service handles booking submissions.
type Service interface {
	// Create validates a submitted payload, persists it and triggers the
	// post-commit notification. A ValidationError means nothing was stored.
	Create(ctx context.Context, in models.BookingInput) (*models.Booking, error)
	// List returns stored bookings, newest first.
	List(ctx context.Context) ([]models.Booking, error)
}
