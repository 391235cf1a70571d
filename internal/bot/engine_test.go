package bot

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julenag/bot/internal/domain"
	"github.com/julenag/bot/internal/domain/models"
	"github.com/julenag/bot/internal/utils"
)

// fakeTripStore mirrors the trip service contract, including the
// travel-date floor check, without a database.
type fakeTripStore struct {
	reqs       map[string][]models.TripRequest
	nextID     int64
	failCreate bool
	failList   bool
}

func newFakeTripStore() *fakeTripStore {
	return &fakeTripStore{reqs: map[string][]models.TripRequest{}, nextID: 1}
}

func (f *fakeTripStore) Create(chatID, origin, destination string, travelDate time.Time) error {
	if f.failCreate {
		return errors.New("db down")
	}
	if travelDate.Before(utils.Today()) {
		return domain.ValidationError{Field: "travel_date", Msg: "date already passed"}
	}
	f.reqs[chatID] = append(f.reqs[chatID], models.TripRequest{
		ID:          f.nextID,
		ChatID:      chatID,
		Origin:      origin,
		Destination: destination,
		TravelDate:  travelDate,
	})
	f.nextID++
	return nil
}

func (f *fakeTripStore) List(chatID string) ([]models.TripRequest, error) {
	if f.failList {
		return nil, errors.New("db down")
	}
	return f.reqs[chatID], nil
}

func (f *fakeTripStore) DeleteAt(chatID string, position int) error {
	reqs := f.reqs[chatID]
	if position < 1 || position > len(reqs) {
		return domain.ValidationError{Field: "position", Msg: "out of range"}
	}
	f.reqs[chatID] = append(reqs[:position-1], reqs[position:]...)
	return nil
}

func newTestEngine(store *fakeTripStore) *Engine {
	return NewEngine(store, time.Minute)
}

func runSetFlow(t *testing.T, e *Engine, chatID, origin, destination string) {
	t.Helper()
	if got := e.HandleCommand(chatID, "set"); got != msgAskOrigin {
		t.Fatalf("/set reply = %q", got)
	}
	if got := e.HandleText(chatID, origin); got != msgAskDestination {
		t.Fatalf("origin reply = %q", got)
	}
	if got := e.HandleText(chatID, destination); got != msgAskDate {
		t.Fatalf("destination reply = %q", got)
	}
}

func TestFullWorkflowCreatesRequestAndViewShowsIt(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	if got := e.HandleText("42", "01/01/2099"); got != msgSaved {
		t.Fatalf("date reply = %q", got)
	}

	if len(store.reqs["42"]) != 1 {
		t.Fatalf("expected 1 stored request, got %d", len(store.reqs["42"]))
	}

	view := e.HandleCommand("42", "view")
	want := "1. Origen: Madrid → Destino: Barcelona | Fecha: 01/01/2099"
	if !strings.Contains(view, want) {
		t.Fatalf("view missing %q, got:\n%s", want, view)
	}
	if !strings.HasPrefix(view, msgListHeader) {
		t.Fatalf("view missing header, got:\n%s", view)
	}

	// conversation is terminal; further text is ignored
	if got := e.HandleText("42", "hola"); got != "" {
		t.Fatalf("expected no reply after commit, got %q", got)
	}
}

func TestInvalidDateKeepsAwaitingDate(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	got := e.HandleText("42", "31/13/2099")
	if got != msgDateInvalid {
		t.Fatalf("invalid date reply = %q", got)
	}
	if !strings.Contains(got, "*dd/mm/aaaa*") {
		t.Fatalf("invalid date reply missing format hint: %q", got)
	}
	if len(store.reqs["42"]) != 0 {
		t.Fatalf("invalid date must not create a request")
	}

	// scratch state survived; a valid date still commits
	if got := e.HandleText("42", "01/01/2099"); got != msgSaved {
		t.Fatalf("retry reply = %q", got)
	}
	if store.reqs["42"][0].Origin != "Madrid" {
		t.Fatalf("scratch origin lost: %+v", store.reqs["42"][0])
	}
}

func TestPastDateKeepsAwaitingDate(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	yesterday := utils.FormatTravelDate(time.Now().AddDate(0, 0, -1))
	if got := e.HandleText("42", yesterday); got != msgDatePast {
		t.Fatalf("past date reply = %q", got)
	}
	if len(store.reqs["42"]) != 0 {
		t.Fatalf("past date must not create a request")
	}
}

func TestStoreFailureKeepsAwaitingDate(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	store.failCreate = true
	if got := e.HandleText("42", "01/01/2099"); got != msgSaveError {
		t.Fatalf("store failure reply = %q", got)
	}

	// user retries the same input after the store recovers
	store.failCreate = false
	if got := e.HandleText("42", "01/01/2099"); got != msgSaved {
		t.Fatalf("retry reply = %q", got)
	}
}

func TestCancelDiscardsScratchState(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	if got := e.HandleCommand("42", "cancel"); got != msgCancelled {
		t.Fatalf("cancel reply = %q", got)
	}
	if got := e.HandleText("42", "01/01/2099"); got != "" {
		t.Fatalf("cancelled conversation still active, reply = %q", got)
	}
	if len(store.reqs["42"]) != 0 {
		t.Fatalf("cancel must not mutate the store")
	}
}

func TestNonTextUpdatesDoNotConsumeSteps(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	// a sticker or photo arrives as an update with empty text
	if got := e.HandleCommand("42", "set"); got != msgAskOrigin {
		t.Fatalf("/set reply = %q", got)
	}
	if got := e.HandleText("42", ""); got != "" {
		t.Fatalf("empty text must be ignored, reply = %q", got)
	}
	if got := e.HandleText("42", "   "); got != "" {
		t.Fatalf("whitespace text must be ignored, reply = %q", got)
	}

	// the conversation is still waiting for the origin
	if got := e.HandleText("42", "Madrid"); got != msgAskDestination {
		t.Fatalf("origin reply after ignored updates = %q", got)
	}
	if got := e.HandleText("42", "Barcelona"); got != msgAskDate {
		t.Fatalf("destination reply = %q", got)
	}
	if got := e.HandleText("42", "01/01/2099"); got != msgSaved {
		t.Fatalf("date reply = %q", got)
	}
	if store.reqs["42"][0].Origin != "Madrid" {
		t.Fatalf("origin corrupted by ignored updates: %+v", store.reqs["42"][0])
	}
}

func TestViewEmptyState(t *testing.T) {
	e := newTestEngine(newFakeTripStore())
	if got := e.HandleCommand("42", "view"); got != msgNoRequests {
		t.Fatalf("empty view reply = %q", got)
	}
}

func TestConversationsAreIsolatedPerChat(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	runSetFlow(t, e, "99", "Valencia", "Granada")

	if got := e.HandleText("99", "02/02/2099"); got != msgSaved {
		t.Fatalf("chat 99 date reply = %q", got)
	}
	if got := e.HandleText("42", "01/01/2099"); got != msgSaved {
		t.Fatalf("chat 42 date reply = %q", got)
	}

	if store.reqs["42"][0].Origin != "Madrid" || store.reqs["99"][0].Origin != "Valencia" {
		t.Fatalf("scratch state leaked across chats: %+v / %+v", store.reqs["42"], store.reqs["99"])
	}
}

func TestDeleteFlow(t *testing.T) {
	store := newFakeTripStore()
	e := newTestEngine(store)

	runSetFlow(t, e, "42", "Madrid", "Barcelona")
	e.HandleText("42", "01/01/2099")
	runSetFlow(t, e, "42", "Sevilla", "Bilbao")
	e.HandleText("42", "02/02/2099")

	prompt := e.HandleCommand("42", "delete")
	if !strings.HasPrefix(prompt, msgDeleteHeader) {
		t.Fatalf("delete prompt = %q", prompt)
	}
	if !strings.Contains(prompt, "2. Origen: Sevilla → Destino: Bilbao | Fecha: 02/02/2099") {
		t.Fatalf("delete prompt missing second entry:\n%s", prompt)
	}

	if got := e.HandleText("42", "dos"); got != msgNotANumber {
		t.Fatalf("non-numeric reply = %q", got)
	}
	if got := e.HandleText("42", "3"); got != msgInvalidIndex {
		t.Fatalf("out-of-range reply = %q", got)
	}
	if got := e.HandleText("42", "0"); got != msgInvalidIndex {
		t.Fatalf("position zero reply = %q", got)
	}
	if len(store.reqs["42"]) != 2 {
		t.Fatalf("invalid selections must not delete, have %d", len(store.reqs["42"]))
	}

	if got := e.HandleText("42", "1"); got != msgDeleted {
		t.Fatalf("delete reply = %q", got)
	}
	if len(store.reqs["42"]) != 1 || store.reqs["42"][0].Origin != "Sevilla" {
		t.Fatalf("wrong request deleted: %+v", store.reqs["42"])
	}

	// positions renumber after deletion
	view := e.HandleCommand("42", "view")
	if !strings.Contains(view, "1. Origen: Sevilla") {
		t.Fatalf("positions not renumbered:\n%s", view)
	}
}

func TestDeleteWithNoRequestsSkipsPrompt(t *testing.T) {
	e := newTestEngine(newFakeTripStore())
	if got := e.HandleCommand("42", "delete"); got != msgNoRequestsToDelete {
		t.Fatalf("empty delete reply = %q", got)
	}
	// no selection state was opened
	if got := e.HandleText("42", "1"); got != "" {
		t.Fatalf("unexpected delete-state reply = %q", got)
	}
}

func TestListFailureRepliesGenericError(t *testing.T) {
	store := newFakeTripStore()
	store.failList = true
	e := newTestEngine(store)
	if got := e.HandleCommand("42", "view"); got != msgGenericError {
		t.Fatalf("view failure reply = %q", got)
	}
	if got := e.HandleCommand("42", "delete"); got != msgGenericError {
		t.Fatalf("delete failure reply = %q", got)
	}
}

func TestStartAndUnknownCommands(t *testing.T) {
	e := newTestEngine(newFakeTripStore())
	if got := e.HandleCommand("42", "start"); got != msgWelcome {
		t.Fatalf("start reply = %q", got)
	}
	if got := e.HandleCommand("42", "help"); got != "" {
		t.Fatalf("unknown command reply = %q", got)
	}
}
