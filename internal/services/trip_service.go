package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/julenag/bot/internal/domain"
	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/repositories"
	"github.com/julenag/bot/internal/utils"
)

// TripService owns the trip-request lifecycle: create on conversation
// completion, list for display, delete by position.
type TripService struct {
	Trips repositories.TripRequestRepository
}

// Create persists a completed trip request. The travel date must not be
// before today; the conversation layer has already parsed it.
func (s TripService) Create(chatID, origin, destination string, travelDate time.Time) error {
	origin = utils.NormalizeSpace(origin)
	destination = utils.NormalizeSpace(destination)
	if origin == "" {
		return domain.ValidationError{Field: "origin", Msg: "empty"}
	}
	if destination == "" {
		return domain.ValidationError{Field: "destination", Msg: "empty"}
	}
	if travelDate.Before(utils.Today()) {
		return domain.ValidationError{Field: "travel_date", Msg: "date already passed"}
	}

	id, err := s.Trips.Insert(chatID, origin, destination, travelDate)
	if err != nil {
		return fmt.Errorf("insert trip request: %w", err)
	}
	utils.LogEvent("", "trip", "create", "chat_id="+chatID+" id="+strconv.FormatInt(id, 10))
	return nil
}

// List returns the chat's requests in display order (ascending id).
func (s TripService) List(chatID string) ([]models.TripRequest, error) {
	return s.Trips.ListByChat(chatID)
}

// DeleteAt removes the request at the 1-based position, re-resolved against
// the live store at delete time. Out-of-range positions come back as a
// validation error so the conversation can re-prompt.
func (s TripService) DeleteAt(chatID string, position int) error {
	ok, err := s.Trips.DeleteAt(chatID, position)
	if err != nil {
		return fmt.Errorf("delete trip request: %w", err)
	}
	if !ok {
		return domain.ValidationError{Field: "position", Msg: "out of range"}
	}
	utils.LogEvent("", "trip", "delete", "chat_id="+chatID+" position="+strconv.Itoa(position))
	return nil
}
