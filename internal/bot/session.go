package bot

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type state int

const (
	stateAwaitingOrigin state = iota
	stateAwaitingDestination
	stateAwaitingDate
	stateAwaitingDeleteIndex
)

// session is the scratch state of one in-progress conversation. It lives
// only in memory: a restart abandons every in-flight conversation.
type session struct {
	State       state
	Origin      string
	Destination string
}

// sessionStore keys sessions by chat id with a sliding idle TTL, so an
// abandoned conversation expires instead of lingering forever.
type sessionStore struct {
	c   *cache.Cache
	ttl time.Duration
}

func newSessionStore(idleTTL time.Duration) *sessionStore {
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	return &sessionStore{
		c:   cache.New(idleTTL, 10*time.Minute),
		ttl: idleTTL,
	}
}

func (s *sessionStore) get(chatID string) (*session, bool) {
	v, ok := s.c.Get(chatID)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session)
	return sess, ok
}

// put stores (or re-stores) the session, refreshing its idle TTL.
func (s *sessionStore) put(chatID string, sess *session) {
	s.c.Set(chatID, sess, s.ttl)
}

func (s *sessionStore) drop(chatID string) {
	s.c.Delete(chatID)
}
