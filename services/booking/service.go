package booking

import (
	"context"
	"time"

	bookingRepo "tamiltaxi/database/repository/booking"
	"tamiltaxi/models"
	"tamiltaxi/services/notification"

	"go.uber.org/zap"
)

// DefaultBookingService implements Service on top of the booking repository
// and the notification dispatcher.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier notification.Service
	Logger   *zap.Logger
}

// pickupDateTime arrives either as a browser datetime-local value (no seconds,
// no zone) or as an RFC 3339 timestamp.
var pickupTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parsePickupTime(raw string) (time.Time, bool) {
	for _, layout := range pickupTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *DefaultBookingService) Create(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	pickupAt, hasTime := parsePickupTime(in.PickupDateTime)
	if in.PickupDateTime == "" {
		hasTime = false
	}

	if in.TripType != TripTypeLocalPackages {
		if !hasLocation(in.PickupLocation) || !hasLocation(in.DropLocation) || !hasTime {
			return nil, ValidationError{Message: "Missing required fields: pickupLocation, dropLocation, pickupDateTime"}
		}
	} else {
		if !hasTime || in.LocalPackage == "" {
			return nil, ValidationError{Message: "Local Packages require pickupDateTime and localPackage selection"}
		}
	}

	booking := models.Booking{
		TripType:       in.TripType,
		CabType:        in.CabType,
		PickupLocation: in.PickupLocation,
		DropLocation:   in.DropLocation,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		CustomerEmail:  in.CustomerEmail,
		PickupDateTime: pickupAt,
	}
	if booking.TripType == "" {
		booking.TripType = DefaultTripType
	}
	if booking.CabType == "" {
		booking.CabType = DefaultCabType
	}
	if in.LocalPackage != "" {
		pkg := in.LocalPackage
		booking.LocalPackage = &pkg
	}

	saved, err := s.Repo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Post-commit hook: the outcome never affects the response and never
	// rolls back the stored record.
	if s.Notifier != nil {
		s.Notifier.BookingCreated(ctx, saved)
	}

	s.Logger.Info("booking created",
		zap.String("id", saved.ID),
		zap.String("tripType", saved.TripType),
		zap.String("cabType", saved.CabType),
	)
	return &saved, nil
}

func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

func hasLocation(loc *models.Location) bool {
	return loc != nil && loc.Address != ""
}
