package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// NominatimProvider queries the OSM Nominatim API. All calls are paced through
// a shared limiter: the Nominatim usage policy allows one request per second.
type NominatimProvider struct {
	BaseURL      string
	Viewbox      string // lonLeft,latTop,lonRight,latBottom
	CountryCodes string
	Client       *http.Client

	limiter *rate.Limiter
}

func NewNominatimProvider(baseURL, viewbox, countryCodes string, client *http.Client) *NominatimProvider {
	return &NominatimProvider{
		BaseURL:      baseURL,
		Viewbox:      viewbox,
		CountryCodes: countryCodes,
		Client:       client,
		limiter:      rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

type nominatimPlace struct {
	DisplayName string      `json:"display_name"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Type        string      `json:"type"`
	Class       string      `json:"class"`
	PlaceID     json.Number `json:"place_id"`
	OSMID       json.Number `json:"osm_id"`
}

// Search queries Nominatim bounded to the configured viewbox and country.
func (n *NominatimProvider) Search(ctx context.Context, query string) ([]Result, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(ResultLimit))
	params.Set("viewbox", n.Viewbox)
	params.Set("bounded", "1")
	params.Set("countrycodes", n.CountryCodes)
	params.Set("q", query)
	params.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := n.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(places))
	for _, p := range places {
		lat, errLat := strconv.ParseFloat(p.Lat, 64)
		lon, errLon := strconv.ParseFloat(p.Lon, 64)
		if errLat != nil || errLon != nil {
			continue
		}
		placeType := p.Type
		if placeType == "" {
			placeType = p.Class
		}
		results = append(results, Result{
			DisplayName: p.DisplayName,
			Lat:         lat,
			Lon:         lon,
			Type:        placeType,
			PlaceID:     nominatimPlaceID(p, lat, lon),
		})
	}
	return results, nil
}

// Reverse resolves a coordinate pair to a display name.
func (n *NominatimProvider) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.BaseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := n.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var decoded struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	return decoded.DisplayName, nil
}

func nominatimPlaceID(p nominatimPlace, lat, lon float64) string {
	if p.PlaceID != "" {
		return p.PlaceID.String()
	}
	if p.OSMID != "" {
		return p.OSMID.String()
	}
	return fmt.Sprintf("%v,%v", lat, lon)
}
