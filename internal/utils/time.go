package utils

import (
	"strings"
	"time"
)

// layoutTravelDate accepts both "01/01/2099" and "1/1/2099", matching the
// day/month/year format the bot asks users for.
const layoutTravelDate = "2/1/2006"

// ParseTravelDate parses user-typed dd/mm/yyyy input in the local timezone.
func ParseTravelDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutTravelDate, strings.TrimSpace(s), time.Local)
}

// FormatTravelDate renders a date back to the dd/mm/yyyy form shown in
// listings and confirmations.
func FormatTravelDate(t time.Time) string {
	return t.In(time.Local).Format("02/01/2006")
}

// Today truncates the current local time to midnight, the floor a new trip
// date is checked against.
func Today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
