// Package geocode resolves free-text address queries to coordinates using a
// fixed chain of OpenStreetMap-backed providers: Photon restricted to the
// service region, then Nominatim restricted to the same region, then Photon
// unrestricted. A provider failure counts as zero results and only gets logged.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Result is a normalized geocoding candidate.
type Result struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Type        string  `json:"type"`
	PlaceID     string  `json:"place_id"`
}

// ResultLimit caps every provider query and therefore the suggestion list.
const ResultLimit = 6

// Client runs the provider fallback chain.
type Client struct {
	Photon    *PhotonProvider
	Nominatim *NominatimProvider
	Logger    *zap.Logger
}

// NewClient builds a Client for the given service region.
func NewClient(photonURL, nominatimURL, bbox, viewbox, country string, logger *zap.Logger) *Client {
	httpClient := &http.Client{Timeout: 8 * time.Second}
	return &Client{
		Photon:    NewPhotonProvider(photonURL, bbox, httpClient),
		Nominatim: NewNominatimProvider(nominatimURL, viewbox, country, httpClient),
		Logger:    logger,
	}
}

// Search resolves a free-text query to candidate locations. It never returns
// an error: upstream failures degrade to an empty result set.
func (c *Client) Search(ctx context.Context, query string) []Result {
	if query == "" {
		return nil
	}

	results, err := c.Photon.Search(ctx, query, true)
	if err != nil {
		c.Logger.Warn("photon regional search failed", zap.String("query", query), zap.Error(err))
	}
	if len(results) > 0 {
		return results
	}

	results, err = c.Nominatim.Search(ctx, query)
	if err != nil {
		c.Logger.Warn("nominatim regional search failed", zap.String("query", query), zap.Error(err))
	}
	if len(results) > 0 {
		return results
	}

	results, err = c.Photon.Search(ctx, query, false)
	if err != nil {
		c.Logger.Warn("photon global search failed", zap.String("query", query), zap.Error(err))
	}
	return results
}

// Reverse resolves a coordinate pair to a display label. On failure the label
// degrades to the formatted coordinates.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) string {
	name, err := c.Nominatim.Reverse(ctx, lat, lon)
	if err != nil || name == "" {
		if err != nil {
			c.Logger.Warn("reverse geocode failed", zap.Float64("lat", lat), zap.Float64("lon", lon), zap.Error(err))
		}
		return FormatCoords(lat, lon)
	}
	return name
}

// FormatCoords renders a coordinate pair the way reverse geocoding degrades:
// five decimal places, "lat, lon".
func FormatCoords(lat, lon float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lon)
}
