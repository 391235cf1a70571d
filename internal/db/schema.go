package db

import "database/sql"

// QueryRower is the subset of *sql.DB used by the schema probes, kept small
// so tests can pass sqlmock handles.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

const createTripRequests = `
CREATE TABLE IF NOT EXISTS trip_requests (
    id          BIGINT AUTO_INCREMENT PRIMARY KEY,
    chat_id     VARCHAR(64)  NOT NULL,
    origin      VARCHAR(255) NOT NULL,
    destination VARCHAR(255) NOT NULL,
    travel_date DATE         NOT NULL,
    created_at  TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
    KEY idx_trip_requests_chat (chat_id, id)
)`

const createNotifications = `
CREATE TABLE IF NOT EXISTS notifications (
    id         BIGINT AUTO_INCREMENT PRIMARY KEY,
    uid        CHAR(36)    NOT NULL,
    chat_id    VARCHAR(64) NOT NULL,
    message    TEXT        NOT NULL,
    delivered  TINYINT(1)  NOT NULL DEFAULT 0,
    created_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
    KEY idx_notifications_delivered (delivered, id)
)`

// EnsureSchema creates the two tables the bot owns. Failure here is treated
// as fatal by the caller; the bot never serves against a half-built schema.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range []string{createTripRequests, createNotifications} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// HasTable reports whether a table exists in the current schema.
func HasTable(q QueryRower, table string) bool {
	var name string
	err := q.QueryRow(`
        SELECT table_name FROM information_schema.tables
        WHERE table_schema = DATABASE() AND table_name = ?
    `, table).Scan(&name)
	return err == nil
}
