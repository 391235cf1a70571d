package repositories

import (
	"database/sql"
	"time"

	"github.com/julenag/bot/internal/domain/models"
)

type TripRequestRepository struct {
	DB *sql.DB
}

// Insert appends a trip request for a chat and returns the new row id.
func (r TripRequestRepository) Insert(chatID, origin, destination string, travelDate time.Time) (int64, error) {
	res, err := r.DB.Exec(`
        INSERT INTO trip_requests (chat_id, origin, destination, travel_date)
        VALUES (?, ?, ?, ?)
    `, chatID, origin, destination, travelDate.Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByChat returns the chat's trip requests in ascending id order. The
// slice index + 1 is the position shown to the user.
func (r TripRequestRepository) ListByChat(chatID string) ([]models.TripRequest, error) {
	rows, err := r.DB.Query(`
        SELECT id, chat_id, origin, destination, travel_date, created_at
        FROM trip_requests
        WHERE chat_id = ?
        ORDER BY id ASC
    `, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TripRequest{}
	for rows.Next() {
		var rec models.TripRequest
		if err := rows.Scan(&rec.ID, &rec.ChatID, &rec.Origin, &rec.Destination, &rec.TravelDate, &rec.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DeleteAt removes the request currently at the 1-based position, resolved
// against the live table at delete time, not against any earlier listing.
// Returns false when the position is out of range.
func (r TripRequestRepository) DeleteAt(chatID string, position int) (bool, error) {
	if position < 1 {
		return false, nil
	}

	var id int64
	err := r.DB.QueryRow(`
        SELECT id FROM trip_requests
        WHERE chat_id = ?
        ORDER BY id ASC
        LIMIT 1 OFFSET ?
    `, chatID, position-1).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	res, err := r.DB.Exec(`DELETE FROM trip_requests WHERE id = ? AND chat_id = ?`, id, chatID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
