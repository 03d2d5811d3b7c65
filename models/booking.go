package models

import "time"

// Location is a resolved place attached to a booking. Lat/Lng stay nil when the
// customer typed a free-text address without picking a geocoded suggestion.
type Location struct {
	Address string   `bson:"address" json:"address"`
	Lat     *float64 `bson:"lat" json:"lat"`
	Lng     *float64 `bson:"lng" json:"lng"`
}

// Booking represents a persisted cab booking.
type Booking struct {
	ID             string    `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	TripType       string    `bson:"tripType" json:"tripType"`             // "One-way", "Round Trip" or "Local Packages"
	CabType        string    `bson:"cabType" json:"cabType"`               // e.g. "Sedan", "SUV", "Innova"
	LocalPackage   *string   `bson:"localPackage" json:"localPackage"`     // Selected package; only meaningful for "Local Packages"
	PickupLocation *Location `bson:"pickupLocation" json:"pickupLocation"` // May be nil for package tours
	DropLocation   *Location `bson:"dropLocation" json:"dropLocation"`     // May be nil for package tours
	CustomerName   string    `bson:"customerName" json:"customerName"`
	CustomerPhone  string    `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail  string    `bson:"customerEmail" json:"customerEmail"`
	PickupDateTime time.Time `bson:"pickupDateTime" json:"pickupDateTime"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"` // Stamped at save time
}
