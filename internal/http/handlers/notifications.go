package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julenag/bot/internal/services"
)

// NotificationHandler is the producer-facing ingest surface: the
// availability detector posts here and the dispatcher picks the rows up on
// its next cycle.
type NotificationHandler struct {
	Service services.NotificationService
}

type createNotificationRequest struct {
	ChatID  string `json:"chat_id"`
	Message string `json:"message"`
}

// POST /api/notifications
func (h NotificationHandler) Create(c *gin.Context) {
	var req createNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_payload", "invalid payload")
		return
	}

	rec, err := h.Service.Enqueue(req.ChatID, req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"uid":     rec.UID,
		"chat_id": rec.ChatID,
		"message": rec.Message,
	})
}

// GET /api/notifications/pending
func (h NotificationHandler) Pending(c *gin.Context) {
	pending, err := h.Service.Pending()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(pending))
	for _, n := range pending {
		out = append(out, gin.H{
			"uid":        n.UID,
			"chat_id":    n.ChatID,
			"message":    n.Message,
			"created_at": n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"pending": out})
}
