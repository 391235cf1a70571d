package services

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/julenag/bot/internal/domain"
	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/repositories"
	"github.com/julenag/bot/internal/utils"
)

// NotificationService fronts the notifications table for both the producer
// ingest API (enqueue) and the dispatcher (pending + mark delivered).
type NotificationService struct {
	Notifications repositories.NotificationRepository
}

// Enqueue stores an undelivered notification for a chat and assigns it a
// uid the producer can correlate on.
func (s NotificationService) Enqueue(chatID, message string) (models.PendingNotification, error) {
	chatID = utils.TrimOrEmpty(chatID)
	message = utils.TrimOrEmpty(message)
	if chatID == "" {
		return models.PendingNotification{}, domain.ValidationError{Field: "chat_id", Msg: "empty"}
	}
	if message == "" {
		return models.PendingNotification{}, domain.ValidationError{Field: "message", Msg: "empty"}
	}

	rec := models.PendingNotification{
		UID:     uuid.NewString(),
		ChatID:  chatID,
		Message: message,
	}
	id, err := s.Notifications.Insert(rec.UID, rec.ChatID, rec.Message)
	if err != nil {
		return models.PendingNotification{}, fmt.Errorf("insert notification: %w", err)
	}
	rec.ID = id
	utils.LogEvent("", "notify", "enqueue", "uid="+rec.UID+" chat_id="+chatID)
	return rec, nil
}

// Pending returns all undelivered rows, oldest first.
func (s NotificationService) Pending() ([]models.PendingNotification, error) {
	return s.Notifications.FetchUndelivered()
}

// MarkDelivered flips one row's flag after a successful send.
func (s NotificationService) MarkDelivered(id int64) error {
	if err := s.Notifications.MarkDelivered(id); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	utils.LogEvent("", "notify", "mark_delivered", "id="+strconv.FormatInt(id, 10))
	return nil
}
