package dispatcher

import (
	"context"
	"strconv"
	"time"

	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/utils"
)

// Sender delivers one outbound message to a chat.
type Sender interface {
	Send(chatID, text string) error
}

// Store is the slice of the notification service the loop needs.
type Store interface {
	Pending() ([]models.PendingNotification, error)
	MarkDelivered(id int64) error
}

// Dispatcher drains undelivered notifications on a fixed interval. A single
// timer drives it and cycles run synchronously, so two sweeps never overlap.
type Dispatcher struct {
	Store    Store
	Sender   Sender
	Interval time.Duration
}

// Run loops until the context is cancelled. The first sweep happens one
// full interval after start, not immediately.
func (d Dispatcher) Run(ctx context.Context) {
	interval := d.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.RunCycle()
		}
	}
}

// RunCycle performs one sweep: fetch undelivered rows, send each, mark it
// delivered. A failing row is logged and skipped; the rest of the batch is
// still attempted. Send-ok/mark-fail leaves the row undelivered, so that
// path can redeliver on the next cycle (at-least-once).
func (d Dispatcher) RunCycle() {
	pending, err := d.Store.Pending()
	if err != nil {
		utils.LogEvent("", "dispatch", "fetch", "error="+err.Error())
		return
	}
	if len(pending) == 0 {
		return
	}

	utils.LogEvent("", "dispatch", "cycle", "pending="+strconv.Itoa(len(pending)))

	for _, n := range pending {
		if err := d.Sender.Send(n.ChatID, n.Message); err != nil {
			utils.LogEvent("", "dispatch", "send", "uid="+n.UID+" chat_id="+n.ChatID+" error="+err.Error())
			continue
		}
		if err := d.Store.MarkDelivered(n.ID); err != nil {
			utils.LogEvent("", "dispatch", "mark", "uid="+n.UID+" error="+err.Error())
		}
	}
}
