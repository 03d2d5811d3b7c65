package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tamiltaxi/models"
)

// APIClient posts bookings to the REST endpoint. It implements BookingAPI.
type APIClient struct {
	BaseURL string
	Client  *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// CreateBooking submits a booking payload. Validation and server failures come
// back as errors carrying the server's message.
func (c *APIClient) CreateBooking(ctx context.Context, in models.BookingInput) (*models.Booking, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return nil, errors.New(apiErr.Message)
		}
		return nil, fmt.Errorf("booking request failed with status %d", resp.StatusCode)
	}

	var saved models.Booking
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
