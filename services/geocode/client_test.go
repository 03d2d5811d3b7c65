package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

const photonFeatureJSON = `{
	"geometry": {"coordinates": [79.6, 11.1]},
	"properties": {"name": "Station Road", "city": "Thanjavur", "state": "Tamil Nadu", "osm_key": "highway", "osm_id": 123}
}`

const nominatimPlaceJSON = `{
	"display_name": "Airport, Tiruchirappalli, Tamil Nadu, India",
	"lat": "11.2", "lon": "79.7", "type": "aerodrome", "class": "aeroway", "place_id": 456
}`

// photonStub serves canned features: one set for bounded queries, one for
// global queries. A nil slice means a 500 response.
type photonStub struct {
	bounded *string
	global  *string
	hits    int
}

func (p *photonStub) handler(w http.ResponseWriter, r *http.Request) {
	p.hits++
	var body *string
	if r.URL.Query().Get("bbox") != "" {
		body = p.bounded
	} else {
		body = p.global
	}
	if body == nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	fmt.Fprintf(w, `{"features":[%s]}`, *body)
}

func strPtr(s string) *string { return &s }

func newTestClient(photonURL, nominatimURL string) *Client {
	httpClient := &http.Client{Timeout: 2 * time.Second}
	return &Client{
		Photon:    NewPhotonProvider(photonURL, "76.0,7.8,80.5,13.5", httpClient),
		Nominatim: NewNominatimProvider(nominatimURL, "76.0,13.5,80.5,7.8", "IN", httpClient),
		Logger:    zap.NewNop(),
	}
}

func TestSearchUsesRegionalPhotonFirst(t *testing.T) {
	photon := &photonStub{bounded: strPtr(photonFeatureJSON), global: strPtr("")}
	photonSrv := httptest.NewServer(http.HandlerFunc(photon.handler))
	defer photonSrv.Close()

	nominatimHits := 0
	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nominatimHits++
		fmt.Fprint(w, "[]")
	}))
	defer nominatimSrv.Close()

	c := newTestClient(photonSrv.URL, nominatimSrv.URL)
	results := c.Search(context.Background(), "station")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.DisplayName != "Station Road, Thanjavur, Tamil Nadu" {
		t.Fatalf("display name composition: %q", r.DisplayName)
	}
	if r.Lat != 11.1 || r.Lon != 79.6 {
		t.Fatalf("coordinate order mixed up: %v, %v", r.Lat, r.Lon)
	}
	if r.Type != "highway" || r.PlaceID != "123" {
		t.Fatalf("metadata mismatch: %+v", r)
	}
	if nominatimHits != 0 {
		t.Fatal("secondary provider must not be queried when the primary has results")
	}
}

func TestSearchFallsBackToNominatim(t *testing.T) {
	photon := &photonStub{bounded: strPtr(""), global: strPtr("")}
	photonSrv := httptest.NewServer(http.HandlerFunc(photon.handler))
	defer photonSrv.Close()

	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bounded") != "1" || r.URL.Query().Get("countrycodes") != "IN" {
			t.Errorf("nominatim query not region-restricted: %s", r.URL.RawQuery)
		}
		fmt.Fprintf(w, "[%s]", nominatimPlaceJSON)
	}))
	defer nominatimSrv.Close()

	c := newTestClient(photonSrv.URL, nominatimSrv.URL)
	results := c.Search(context.Background(), "airport")

	if len(results) != 1 {
		t.Fatalf("expected nominatim result, got %d", len(results))
	}
	r := results[0]
	if r.DisplayName != "Airport, Tiruchirappalli, Tamil Nadu, India" {
		t.Fatalf("display name: %q", r.DisplayName)
	}
	if r.Lat != 11.2 || r.Lon != 79.7 {
		t.Fatalf("string coords not parsed: %v, %v", r.Lat, r.Lon)
	}
	if r.PlaceID != "456" {
		t.Fatalf("place id: %q", r.PlaceID)
	}
}

func TestSearchFallsBackToGlobalPhoton(t *testing.T) {
	photon := &photonStub{bounded: strPtr(""), global: strPtr(photonFeatureJSON)}
	photonSrv := httptest.NewServer(http.HandlerFunc(photon.handler))
	defer photonSrv.Close()

	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	defer nominatimSrv.Close()

	c := newTestClient(photonSrv.URL, nominatimSrv.URL)
	results := c.Search(context.Background(), "somewhere far away")

	if len(results) != 1 {
		t.Fatalf("expected global photon result, got %d", len(results))
	}
	if photon.hits != 2 {
		t.Fatalf("expected bounded then global photon query, got %d hits", photon.hits)
	}
}

func TestSearchTreatsProviderFailureAsEmpty(t *testing.T) {
	// Bounded photon errors, nominatim answers: the caller sees nominatim's
	// results and no error at all.
	photon := &photonStub{bounded: nil, global: strPtr("")}
	photonSrv := httptest.NewServer(http.HandlerFunc(photon.handler))
	defer photonSrv.Close()

	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "[%s]", nominatimPlaceJSON)
	}))
	defer nominatimSrv.Close()

	c := newTestClient(photonSrv.URL, nominatimSrv.URL)
	results := c.Search(context.Background(), "airport")

	if len(results) != 1 {
		t.Fatalf("provider failure should degrade to the next step, got %d results", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	c := newTestClient("http://127.0.0.1:0", "http://127.0.0.1:0")
	if results := c.Search(context.Background(), ""); results != nil {
		t.Fatalf("empty query should short-circuit, got %v", results)
	}
}

func TestReverse(t *testing.T) {
	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"display_name":"Big Temple, Thanjavur"}`)
	}))
	defer nominatimSrv.Close()

	c := newTestClient("http://127.0.0.1:0", nominatimSrv.URL)
	if got := c.Reverse(context.Background(), 10.78, 79.13); got != "Big Temple, Thanjavur" {
		t.Fatalf("reverse: %q", got)
	}
}

func TestReverseDegradesToCoords(t *testing.T) {
	nominatimSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer nominatimSrv.Close()

	c := newTestClient("http://127.0.0.1:0", nominatimSrv.URL)
	if got := c.Reverse(context.Background(), 10.78, 79.13); got != "10.78000, 79.13000" {
		t.Fatalf("degraded label: %q", got)
	}
}
