package models

import "time"

// PendingNotification is one row of notifications. Rows are appended by the
// availability producer through the ingest API and flipped to delivered by
// the dispatcher; they are never deleted.
type PendingNotification struct {
	ID        int64
	UID       string
	ChatID    string
	Message   string
	Delivered bool
	CreatedAt time.Time
}
