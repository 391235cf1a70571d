package repositories

import (
	"database/sql"

	"github.com/julenag/bot/internal/domain/models"
)

type NotificationRepository struct {
	DB *sql.DB
}

// Insert enqueues an undelivered notification and returns the new row id.
func (r NotificationRepository) Insert(uid, chatID, message string) (int64, error) {
	res, err := r.DB.Exec(`
        INSERT INTO notifications (uid, chat_id, message, delivered)
        VALUES (?, ?, ?, 0)
    `, uid, chatID, message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// FetchUndelivered returns every row still flagged undelivered, oldest
// first, which is the order the dispatcher sends them in.
func (r NotificationRepository) FetchUndelivered() ([]models.PendingNotification, error) {
	rows, err := r.DB.Query(`
        SELECT id, uid, chat_id, message, delivered, created_at
        FROM notifications
        WHERE delivered = 0
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PendingNotification{}
	for rows.Next() {
		var rec models.PendingNotification
		if err := rows.Scan(&rec.ID, &rec.UID, &rec.ChatID, &rec.Message, &rec.Delivered, &rec.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MarkDelivered flips one row's delivered flag by primary key.
func (r NotificationRepository) MarkDelivered(id int64) error {
	_, err := r.DB.Exec(`UPDATE notifications SET delivered = 1 WHERE id = ?`, id)
	return err
}
