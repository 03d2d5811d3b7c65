package routes

import (
	"net/http"
	"time"

	"tamiltaxi/handlers"
	"tamiltaxi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
	}
}

// RegisterGeocodeRoutes registers the geocoding proxy endpoints.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geocode")
	{
		api.GET("/search", hb.GeocodeSearch)
		api.GET("/reverse", hb.GeocodeReverse)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
	RegisterHealthRoute(r)
}
