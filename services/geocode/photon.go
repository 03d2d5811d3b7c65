package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PhotonProvider queries the Photon geocoding API (photon.komoot.io).
type PhotonProvider struct {
	BaseURL string
	BBox    string // minLon,minLat,maxLon,maxLat
	Client  *http.Client
}

func NewPhotonProvider(baseURL, bbox string, client *http.Client) *PhotonProvider {
	return &PhotonProvider{BaseURL: baseURL, BBox: bbox, Client: client}
}

type photonProperties struct {
	Name    string      `json:"name"`
	City    string      `json:"city"`
	Town    string      `json:"town"`
	Village string      `json:"village"`
	State   string      `json:"state"`
	Country string      `json:"country"`
	Label   string      `json:"label"`
	OSMKey  string      `json:"osm_key"`
	OSMID   json.Number `json:"osm_id"`
}

type photonFeature struct {
	ID       json.Number `json:"id"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // lon, lat
	} `json:"geometry"`
	Properties photonProperties `json:"properties"`
}

type photonResponse struct {
	Features []photonFeature `json:"features"`
}

// Search queries Photon, restricted to the provider's bounding box when
// bounded is true and worldwide otherwise.
func (p *PhotonProvider) Search(ctx context.Context, query string, bounded bool) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(ResultLimit))
	params.Set("lang", "en")
	if bounded && p.BBox != "" {
		params.Set("bbox", p.BBox)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/api/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photon returned status %d", resp.StatusCode)
	}

	var decoded photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		results = append(results, Result{
			DisplayName: photonDisplayName(f.Properties),
			Lat:         f.Geometry.Coordinates[1],
			Lon:         f.Geometry.Coordinates[0],
			Type:        f.Properties.OSMKey,
			PlaceID:     photonPlaceID(f),
		})
	}
	return results, nil
}

// photonDisplayName composes a friendly label out of the feature properties.
func photonDisplayName(props photonProperties) string {
	city := props.City
	if city == "" {
		city = props.Town
	}
	if city == "" {
		city = props.Village
	}

	display := ""
	if props.Name != "" {
		display = props.Name
		if city != "" {
			display += ", " + city
		}
		if props.State != "" {
			display += ", " + props.State
		}
	} else if props.Label != "" {
		display = props.Label
	} else {
		display = city
		if props.State != "" {
			if display != "" {
				display += ", "
			}
			display += props.State
		}
	}

	if display == "" {
		display = props.Country
	}
	return display
}

func photonPlaceID(f photonFeature) string {
	if f.Properties.OSMID != "" {
		return f.Properties.OSMID.String()
	}
	return f.ID.String()
}
