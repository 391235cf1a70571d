package bot

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/julenag/bot/internal/domain"
	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/utils"
)

// TripStore is the slice of the trip service the engine needs.
type TripStore interface {
	Create(chatID, origin, destination string, travelDate time.Time) error
	List(chatID string) ([]models.TripRequest, error)
	DeleteAt(chatID string, position int) error
}

// Engine is the transport-independent conversation core: it takes one
// inbound command or text for a chat and returns the reply to send back.
// Handlers may run concurrently for different chats; scratch state is keyed
// by chat id and never shared.
type Engine struct {
	trips    TripStore
	sessions *sessionStore
}

func NewEngine(trips TripStore, idleTTL time.Duration) *Engine {
	return &Engine{
		trips:    trips,
		sessions: newSessionStore(idleTTL),
	}
}

// HandleCommand routes the registered commands. An empty reply means the
// command was not recognized and nothing should be sent.
func (e *Engine) HandleCommand(chatID, command string) string {
	switch command {
	case "start":
		return msgWelcome
	case "set":
		e.sessions.put(chatID, &session{State: stateAwaitingOrigin})
		return msgAskOrigin
	case "view":
		reqs, err := e.trips.List(chatID)
		if err != nil {
			utils.LogEvent("", "bot", "view", "error="+err.Error())
			return msgGenericError
		}
		if len(reqs) == 0 {
			return msgNoRequests
		}
		return formatListing(msgListHeader, reqs)
	case "delete":
		reqs, err := e.trips.List(chatID)
		if err != nil {
			utils.LogEvent("", "bot", "delete", "error="+err.Error())
			return msgGenericError
		}
		if len(reqs) == 0 {
			return msgNoRequestsToDelete
		}
		e.sessions.put(chatID, &session{State: stateAwaitingDeleteIndex})
		return formatListing(msgDeleteHeader, reqs)
	case "cancel":
		e.sessions.drop(chatID)
		return msgCancelled
	}
	return ""
}

// HandleText advances the chat's conversation, if one is active. Plain text
// outside any conversation is ignored, and so are updates without text
// (stickers, photos, locations): they must not consume a workflow step.
func (e *Engine) HandleText(chatID, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	sess, ok := e.sessions.get(chatID)
	if !ok {
		return ""
	}

	switch sess.State {
	case stateAwaitingOrigin:
		sess.Origin = text
		sess.State = stateAwaitingDestination
		e.sessions.put(chatID, sess)
		return msgAskDestination

	case stateAwaitingDestination:
		sess.Destination = text
		sess.State = stateAwaitingDate
		e.sessions.put(chatID, sess)
		return msgAskDate

	case stateAwaitingDate:
		return e.handleDate(chatID, sess, text)

	case stateAwaitingDeleteIndex:
		return e.handleDeleteIndex(chatID, sess, text)
	}
	return ""
}

// handleDate is the only step that touches the store on the /set path. Any
// rejection keeps the session in the date state so the user can retry
// without losing origin/destination.
func (e *Engine) handleDate(chatID string, sess *session, text string) string {
	date, err := utils.ParseTravelDate(text)
	if err != nil {
		e.sessions.put(chatID, sess)
		return msgDateInvalid
	}

	err = e.trips.Create(chatID, sess.Origin, sess.Destination, date)
	if err != nil {
		e.sessions.put(chatID, sess)
		var v domain.ValidationError
		if errors.As(err, &v) && v.Field == "travel_date" {
			return msgDatePast
		}
		utils.LogEvent("", "bot", "save_trip", "chat_id="+chatID+" error="+err.Error())
		return msgSaveError
	}

	e.sessions.drop(chatID)
	return msgSaved
}

func (e *Engine) handleDeleteIndex(chatID string, sess *session, text string) string {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		e.sessions.put(chatID, sess)
		return msgNotANumber
	}

	// The position is re-resolved against the live store inside DeleteAt;
	// a listing shown earlier may already be stale.
	err = e.trips.DeleteAt(chatID, n)
	if err != nil {
		e.sessions.put(chatID, sess)
		if domain.IsValidation(err) {
			return msgInvalidIndex
		}
		utils.LogEvent("", "bot", "delete_trip", "chat_id="+chatID+" error="+err.Error())
		return msgGenericError
	}

	e.sessions.drop(chatID)
	return msgDeleted
}
