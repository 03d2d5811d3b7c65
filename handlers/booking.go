package handlers

import (
	"errors"
	"net/http"

	"tamiltaxi/models"
	"tamiltaxi/services/booking"
	"tamiltaxi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking accepts a booking payload, persists it and returns the stored
// record with its assigned id.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload", err.Error())
		return
	}

	saved, err := h.Service.Create(c.Request.Context(), in)
	if err != nil {
		var vErr booking.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		h.Logger.Error("booking save error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// ListBookings returns stored bookings, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("booking list error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
