// Package widget holds the client-side booking surfaces as plain state
// machines: the booking form controller and the map-based location picker.
// Rendering is left to whatever front end drives them; all behavior that
// matters (debounced suggestions, keyboard navigation, single in-flight
// submission, marker handling) lives here.
package widget

import (
	"context"
	"errors"
	"sync"
	"time"

	"tamiltaxi/models"
	"tamiltaxi/services/geocode"
)

// Geocoder is the subset of the geocoding client the widgets need.
type Geocoder interface {
	Search(ctx context.Context, query string) []geocode.Result
	Reverse(ctx context.Context, lat, lon float64) string
}

// BookingAPI submits validated bookings.
type BookingAPI interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error)
}

// Field selects one of the two address inputs.
type Field int

const (
	FieldPickup Field = iota
	FieldDrop
)

// Key is a keyboard event relevant to suggestion navigation.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
)

// LocalPackages is the fixed catalog selectable for "Local Packages" trips.
var LocalPackages = []string{
	"Temple Tour",
	"City Tour",
	"Hill Station Tour",
	"Full Day Package",
}

const (
	defaultDebounce       = 300 * time.Millisecond
	defaultConfirmDismiss = 3500 * time.Millisecond
	maxSuggestions        = geocode.ResultLimit
)

var (
	// ErrSubmissionInFlight rejects a submit while another one is pending.
	ErrSubmissionInFlight = errors.New("a booking submission is already in progress")
	// ErrMissingFields rejects a submit with incomplete required fields.
	ErrMissingFields = errors.New("please fill pickup, drop and pickup date/time")
	// ErrMissingPackage rejects a Local Packages submit without a selection.
	ErrMissingPackage = errors.New("please choose a package and pickup date/time")
)

type addressField struct {
	address     string
	lat         *float64
	lng         *float64
	suggestions []geocode.Result
	active      int
	timer       *time.Timer
}

// FormController owns the booking form state.
type FormController struct {
	mu sync.Mutex

	tripType       string
	cabType        string
	localPackage   string
	pickup         addressField
	drop           addressField
	pickupDateTime string
	customerName   string
	customerPhone  string

	sending      bool
	lastError    string
	confirmation string
	confirmTimer *time.Timer

	geocoder Geocoder
	api      BookingAPI

	// DebounceInterval and ConfirmDismiss are fixed at construction and may
	// be shortened by tests.
	DebounceInterval time.Duration
	ConfirmDismiss   time.Duration
}

// NewFormController builds a controller with default trip and cab types.
func NewFormController(geocoder Geocoder, api BookingAPI) *FormController {
	return &FormController{
		tripType:         "One-way",
		cabType:          "Sedan",
		pickup:           addressField{active: -1},
		drop:             addressField{active: -1},
		geocoder:         geocoder,
		api:              api,
		DebounceInterval: defaultDebounce,
		ConfirmDismiss:   defaultConfirmDismiss,
	}
}

func (f *FormController) field(which Field) *addressField {
	if which == FieldPickup {
		return &f.pickup
	}
	return &f.drop
}

// SetTripType switches the trip type. A previously chosen package value stays
// in memory; the server ignores it unless the trip type is "Local Packages".
func (f *FormController) SetTripType(t string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tripType = t
}

func (f *FormController) SetCabType(t string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cabType = t
}

func (f *FormController) SetLocalPackage(pkg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.localPackage = pkg
}

func (f *FormController) SetPickupDateTime(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pickupDateTime = v
}

func (f *FormController) SetCustomer(name, phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customerName = name
	f.customerPhone = phone
}

// Input records a free-text change to an address field. Typed text replaces
// the address, detaches any coordinates and restarts the debounce timer; an
// empty input clears the suggestion list instead.
func (f *FormController) Input(which Field, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs := f.field(which)
	fs.address = text
	fs.lat, fs.lng = nil, nil
	fs.active = -1

	if fs.timer != nil {
		fs.timer.Stop()
		fs.timer = nil
	}
	if text == "" {
		fs.suggestions = nil
		return
	}

	fs.timer = time.AfterFunc(f.DebounceInterval, func() {
		results := f.geocoder.Search(context.Background(), text)
		if len(results) > maxSuggestions {
			results = results[:maxSuggestions]
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		current := f.field(which)
		// A newer keystroke restarted the debounce; drop this response.
		if current.address != text {
			return
		}
		current.suggestions = results
		current.active = -1
	})
}

// KeyDown applies the keyboard contract for suggestion navigation.
func (f *FormController) KeyDown(which Field, key Key) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs := f.field(which)
	if len(fs.suggestions) == 0 {
		return
	}

	switch key {
	case KeyDown:
		if fs.active < len(fs.suggestions)-1 {
			fs.active++
		}
	case KeyUp:
		if fs.active > 0 {
			fs.active--
		}
	case KeyEnter:
		if fs.active >= 0 && fs.active < len(fs.suggestions) {
			f.selectLocked(fs, fs.suggestions[fs.active])
		}
	case KeyEscape:
		fs.suggestions = nil
		fs.active = -1
	}
}

// Select picks a suggestion by index, setting address and coordinates
// atomically and clearing the list.
func (f *FormController) Select(which Field, index int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs := f.field(which)
	if index < 0 || index >= len(fs.suggestions) {
		return
	}
	f.selectLocked(fs, fs.suggestions[index])
}

func (f *FormController) selectLocked(fs *addressField, r geocode.Result) {
	lat, lng := r.Lat, r.Lon
	fs.address = r.DisplayName
	fs.lat, fs.lng = &lat, &lng
	fs.suggestions = nil
	fs.active = -1
	if fs.timer != nil {
		fs.timer.Stop()
		fs.timer = nil
	}
}

// ApplyMapSelection takes the location emitted by a MapPicker confirm.
func (f *FormController) ApplyMapSelection(which Field, sel Selection) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs := f.field(which)
	lat, lng := sel.Lat, sel.Lng
	fs.address = sel.Address
	fs.lat, fs.lng = &lat, &lng
	fs.suggestions = nil
	fs.active = -1
}

// Submit validates the form and posts it to the booking API. Only one
// submission may be in flight; the flag clears on both success and failure.
func (f *FormController) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.sending {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if err := f.validateLocked(); err != nil {
		f.lastError = err.Error()
		f.mu.Unlock()
		return err
	}
	in := f.payloadLocked()
	f.sending = true
	f.lastError = ""
	f.mu.Unlock()

	saved, err := f.api.CreateBooking(ctx, in)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sending = false
	if err != nil {
		// Keep the form intact so the customer can correct and resubmit.
		f.lastError = err.Error()
		return err
	}

	f.resetLocked()
	f.confirmation = "Booking submitted! Ref: " + saved.ID
	if f.confirmTimer != nil {
		f.confirmTimer.Stop()
	}
	f.confirmTimer = time.AfterFunc(f.ConfirmDismiss, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.confirmation = ""
	})
	return nil
}

func (f *FormController) validateLocked() error {
	if f.tripType == "Local Packages" {
		if f.localPackage == "" || f.pickupDateTime == "" {
			return ErrMissingPackage
		}
		return nil
	}
	if f.pickup.address == "" || f.drop.address == "" || f.pickupDateTime == "" {
		return ErrMissingFields
	}
	return nil
}

func (f *FormController) payloadLocked() models.BookingInput {
	in := models.BookingInput{
		TripType:       f.tripType,
		CabType:        f.cabType,
		PickupDateTime: f.pickupDateTime,
		CustomerName:   f.customerName,
		CustomerPhone:  f.customerPhone,
	}
	if f.tripType == "Local Packages" {
		in.LocalPackage = f.localPackage
		return in
	}
	in.PickupLocation = &models.Location{Address: f.pickup.address, Lat: f.pickup.lat, Lng: f.pickup.lng}
	in.DropLocation = &models.Location{Address: f.drop.address, Lat: f.drop.lat, Lng: f.drop.lng}
	return in
}

func (f *FormController) resetLocked() {
	for _, fs := range []*addressField{&f.pickup, &f.drop} {
		if fs.timer != nil {
			fs.timer.Stop()
		}
		*fs = addressField{active: -1}
	}
	f.pickupDateTime = ""
	f.localPackage = ""
	f.customerName = ""
	f.customerPhone = ""
}

// Accessors used by the rendering layer and tests.

func (f *FormController) Address(which Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field(which).address
}

func (f *FormController) Coords(which Field) (lat, lng *float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fs := f.field(which)
	return fs.lat, fs.lng
}

func (f *FormController) Suggestions(which Field) []geocode.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field(which).suggestions
}

func (f *FormController) ActiveIndex(which Field) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.field(which).active
}

func (f *FormController) Sending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sending
}

func (f *FormController) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

func (f *FormController) Confirmation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation
}

func (f *FormController) TripType() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tripType
}

// Close stops any pending timers.
func (f *FormController) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fs := range []*addressField{&f.pickup, &f.drop} {
		if fs.timer != nil {
			fs.timer.Stop()
			fs.timer = nil
		}
	}
	if f.confirmTimer != nil {
		f.confirmTimer.Stop()
		f.confirmTimer = nil
	}
}
