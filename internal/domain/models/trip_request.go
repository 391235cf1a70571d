package models

import "time"

// TripRequest is one row of trip_requests: a route the user wants to be
// notified about once tickets go on sale. The 1-based position shown in
// /view and /delete is derived from ascending id order at query time and is
// never stored.
type TripRequest struct {
	ID          int64
	ChatID      string
	Origin      string
	Destination string
	TravelDate  time.Time
	CreatedAt   time.Time
}
