package models

// BookingInput is the wire payload of a booking submission. PickupDateTime is
// kept as a string because browser datetime-local inputs send "2006-01-02T15:04"
// without seconds or a zone; the booking service parses it.
type BookingInput struct {
	TripType       string    `json:"tripType"`
	CabType        string    `json:"cabType"`
	LocalPackage   string    `json:"localPackage"`
	PickupLocation *Location `json:"pickupLocation"`
	DropLocation   *Location `json:"dropLocation"`
	CustomerName   string    `json:"customerName"`
	CustomerPhone  string    `json:"customerPhone"`
	CustomerEmail  string    `json:"customerEmail"`
	PickupDateTime string    `json:"pickupDateTime"`
}
