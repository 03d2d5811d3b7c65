package widget

import (
	"context"
	"testing"

	"tamiltaxi/services/geocode"
)

func TestTapPlacesSingleMarker(t *testing.T) {
	g := &fakeGeocoder{reverse: "Big Temple, Thanjavur"}
	p := NewMapPicker(g, nil)

	p.Tap(context.Background(), 10.78, 79.13)
	if m := p.Marker(); m == nil || m.Lat != 10.78 {
		t.Fatalf("marker not placed: %+v", m)
	}
	if p.Address() != "Big Temple, Thanjavur" {
		t.Fatalf("reverse geocoded address: %q", p.Address())
	}

	// A second tap replaces the marker rather than adding one.
	p.Tap(context.Background(), 11.0, 78.0)
	if m := p.Marker(); m.Lat != 11.0 || m.Lng != 78.0 {
		t.Fatalf("marker should move: %+v", m)
	}
}

func TestReverseGeocodeDegradation(t *testing.T) {
	p := NewMapPicker(&fakeGeocoder{}, nil)
	p.Tap(context.Background(), 10.78, 79.13)
	if p.Address() != geocode.FormatCoords(10.78, 79.13) {
		t.Fatalf("degraded address: %q", p.Address())
	}
}

func TestSearchAndSelectResult(t *testing.T) {
	g := &fakeGeocoder{results: someResults(2)}
	p := NewMapPicker(g, nil)

	p.Search(context.Background(), "temple")
	if len(p.Results()) != 2 {
		t.Fatalf("results: %d", len(p.Results()))
	}

	p.SelectResult(1)
	if m := p.Marker(); m == nil || m.Lat != 11.1 {
		t.Fatalf("marker from result: %+v", m)
	}
	if p.Address() != "Place 1, Thanjavur" {
		t.Fatalf("address from result: %q", p.Address())
	}
	if len(p.Results()) != 0 {
		t.Fatal("selection clears the result list")
	}
}

func TestConfirmRequiresMarker(t *testing.T) {
	emitted := 0
	p := NewMapPicker(&fakeGeocoder{}, func(Selection) { emitted++ })

	if err := p.Confirm(); err != ErrNoMarker {
		t.Fatalf("expected ErrNoMarker, got %v", err)
	}
	if p.Closed() {
		t.Fatal("rejected confirm must not close the picker")
	}
	if emitted != 0 {
		t.Fatal("nothing should be emitted without a marker")
	}
}

func TestConfirmEmitsAndCloses(t *testing.T) {
	var got Selection
	p := NewMapPicker(&fakeGeocoder{reverse: "Marina Beach, Chennai"}, func(s Selection) { got = s })

	p.Tap(context.Background(), 13.05, 80.28)
	if err := p.Confirm(); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if !p.Closed() {
		t.Fatal("confirm closes the picker")
	}
	if got.Address != "Marina Beach, Chennai" || got.Lat != 13.05 || got.Lng != 80.28 {
		t.Fatalf("emitted selection: %+v", got)
	}
}

func TestClearRemovesMarker(t *testing.T) {
	p := NewMapPicker(&fakeGeocoder{}, nil)
	p.Tap(context.Background(), 10.0, 78.0)
	p.Clear()
	if p.Marker() != nil || p.Address() != "" {
		t.Fatal("clear should remove marker and address")
	}
	if err := p.Confirm(); err != ErrNoMarker {
		t.Fatal("confirm after clear must be rejected")
	}
}
