package notification

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"tamiltaxi/models"
)

const timeLayout = "02 Jan 2006 15:04"

// escapeHTML neutralizes user-supplied text for Telegram parse_mode=HTML.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// mapsLink builds a Google Maps search link for a coordinate pair.
func mapsLink(lat, lng float64) string {
	query := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query)
}

// formatBookingMessage composes the operator summary for a stored booking.
func formatBookingMessage(b models.Booking) string {
	lines := []string{
		"<b>New Booking Received</b>",
		"",
		fmt.Sprintf("<b>ID:</b> %s", escapeHTML(b.ID)),
		fmt.Sprintf("<b>Trip:</b> %s", escapeHTML(b.TripType)),
		fmt.Sprintf("<b>Cab:</b> %s", escapeHTML(b.CabType)),
	}
	if b.LocalPackage != nil && *b.LocalPackage != "" {
		lines = append(lines, fmt.Sprintf("<b>Package:</b> %s", escapeHTML(*b.LocalPackage)))
	}
	if b.CustomerName != "" {
		lines = append(lines, fmt.Sprintf("<b>Name:</b> %s", escapeHTML(b.CustomerName)))
	}
	if b.CustomerPhone != "" {
		lines = append(lines, fmt.Sprintf("<b>Phone:</b> %s", escapeHTML(b.CustomerPhone)))
	}

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("<b>Pickup:</b> %s", escapeHTML(locationAddress(b.PickupLocation))))
	if lat, lng, ok := locationCoords(b.PickupLocation); ok {
		lines = append(lines, fmt.Sprintf(`<a href="%s">View Pickup on Map</a>`, mapsLink(lat, lng)))
	}
	lines = append(lines, fmt.Sprintf("<b>Drop:</b> %s", escapeHTML(locationAddress(b.DropLocation))))
	if lat, lng, ok := locationCoords(b.DropLocation); ok {
		lines = append(lines, fmt.Sprintf(`<a href="%s">View Drop on Map</a>`, mapsLink(lat, lng)))
	}

	lines = append(lines, "")
	pickupAt := ""
	if !b.PickupDateTime.IsZero() {
		pickupAt = b.PickupDateTime.Format(timeLayout)
	}
	lines = append(lines, fmt.Sprintf("<b>Pickup at:</b> %s", pickupAt))
	lines = append(lines, fmt.Sprintf("<b>Created:</b> %s", b.CreatedAt.Format(timeLayout)))

	return strings.Join(lines, "\n")
}

func locationAddress(loc *models.Location) string {
	if loc == nil {
		return ""
	}
	return loc.Address
}

func locationCoords(loc *models.Location) (float64, float64, bool) {
	if loc == nil || loc.Lat == nil || loc.Lng == nil {
		return 0, 0, false
	}
	return *loc.Lat, *loc.Lng, true
}
