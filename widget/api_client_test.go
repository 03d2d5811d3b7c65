package widget

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tamiltaxi/models"
)

func TestAPIClientCreateBooking(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in models.BookingInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{ID: "ref-9", TripType: in.TripType})
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL + "/")
	saved, err := c.CreateBooking(context.Background(), models.BookingInput{TripType: "Round Trip"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID != "ref-9" || saved.TripType != "Round Trip" {
		t.Fatalf("saved: %+v", saved)
	}
}

func TestAPIClientSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Local Packages require pickupDateTime and localPackage selection"}`))
	}))
	defer srv.Close()

	c := NewAPIClient(srv.URL)
	_, err := c.CreateBooking(context.Background(), models.BookingInput{TripType: "Local Packages"})
	if err == nil || err.Error() != "Local Packages require pickupDateTime and localPackage selection" {
		t.Fatalf("expected the server's message, got %v", err)
	}
}
