package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking gin.HandlerFunc
	ListBookings  gin.HandlerFunc

	// Geocoding proxy endpoints.
	GeocodeSearch  gin.HandlerFunc
	GeocodeReverse gin.HandlerFunc
}
