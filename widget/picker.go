package widget

import (
	"context"
	"errors"
	"sync"

	"tamiltaxi/services/geocode"
)

// Marker is the single pin on the picker map.
type Marker struct {
	Lat float64
	Lng float64
}

// Selection is what a confirmed picker emits back to the form.
type Selection struct {
	Address string
	Lat     float64
	Lng     float64
}

// ErrNoMarker rejects a confirm before any location was picked.
var ErrNoMarker = errors.New("please pick a location on the map or choose a search result")

// MapPicker models the interactive map surface. At most one marker exists at
// a time; each new choice replaces it.
type MapPicker struct {
	mu sync.Mutex

	geocoder Geocoder
	onSelect func(Selection)

	marker  *Marker
	address string
	results []geocode.Result
	closed  bool
}

// NewMapPicker builds a picker that reports its confirmed selection through
// onSelect.
func NewMapPicker(geocoder Geocoder, onSelect func(Selection)) *MapPicker {
	return &MapPicker{geocoder: geocoder, onSelect: onSelect}
}

// Tap places the marker at a clicked coordinate and reverse-geocodes it.
func (p *MapPicker) Tap(ctx context.Context, lat, lng float64) {
	address := p.geocoder.Reverse(ctx, lat, lng)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.marker = &Marker{Lat: lat, Lng: lng}
	p.address = address
	p.results = nil
}

// UseCurrentPosition places the marker at the device-reported position.
func (p *MapPicker) UseCurrentPosition(ctx context.Context, lat, lng float64) {
	p.Tap(ctx, lat, lng)
}

// Search runs a free-text lookup and stores the candidates.
func (p *MapPicker) Search(ctx context.Context, query string) {
	if query == "" {
		p.mu.Lock()
		p.results = nil
		p.mu.Unlock()
		return
	}
	results := p.geocoder.Search(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = results
}

// SelectResult moves the marker to a search candidate.
func (p *MapPicker) SelectResult(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.results) {
		return
	}
	r := p.results[index]
	p.marker = &Marker{Lat: r.Lat, Lng: r.Lon}
	p.address = r.DisplayName
	if p.address == "" {
		p.address = geocode.FormatCoords(r.Lat, r.Lon)
	}
	p.results = nil
}

// Clear removes the marker, address and any pending results.
func (p *MapPicker) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.marker = nil
	p.address = ""
	p.results = nil
}

// Confirm emits the current selection and closes the picker. Without a marker
// it fails with a user-facing prompt and stays open.
func (p *MapPicker) Confirm() error {
	p.mu.Lock()
	if p.marker == nil {
		p.mu.Unlock()
		return ErrNoMarker
	}
	sel := Selection{Address: p.address, Lat: p.marker.Lat, Lng: p.marker.Lng}
	onSelect := p.onSelect
	p.closed = true
	p.mu.Unlock()

	if onSelect != nil {
		onSelect(sel)
	}
	return nil
}

func (p *MapPicker) Marker() *Marker {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.marker == nil {
		return nil
	}
	m := *p.marker
	return &m
}

func (p *MapPicker) Address() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.address
}

func (p *MapPicker) Results() []geocode.Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

func (p *MapPicker) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}
