package handlers

import (
	"net/http"
	"strconv"

	"tamiltaxi/services/geocode"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler proxies address search and reverse lookups so browser
// clients do not each call the upstream providers directly.
type GeocodeHandler struct {
	Client *geocode.Client
}

func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{Client: client}
}

// Search resolves a free-text query through the provider fallback chain.
func (h *GeocodeHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required query parameter: q"})
		return
	}

	results := h.Client.Search(c.Request.Context(), query)
	if results == nil {
		results = []geocode.Result{}
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// Reverse resolves a coordinate pair to a display label.
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid query parameters: lat, lon"})
		return
	}

	address := h.Client.Reverse(c.Request.Context(), lat, lon)
	c.JSON(http.StatusOK, gin.H{"address": address})
}
