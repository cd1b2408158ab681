// Package session keeps login state server-side. The client only holds an
// opaque token (wrapped in a signed cookie by the middleware package); all
// session data, including pending flash messages, lives in this store.
// No expiry or rotation is implemented.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Session is the server-side state for one logged-in browser.
type Session struct {
	ID   string
	User string

	mu      sync.Mutex
	flashes []string
}

// AddFlash queues a one-time status message for the next rendered page.
func (s *Session) AddFlash(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, msg)
}

// Flashes returns and clears the queued messages.
func (s *Session) Flashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

var (
	mu       sync.RWMutex
	sessions = make(map[string]*Session)
)

// Create registers a new session for user and returns it.
func Create(user string) *Session {
	s := &Session{
		ID:   uuid.NewString(),
		User: user,
	}
	mu.Lock()
	sessions[s.ID] = s
	mu.Unlock()
	return s
}

// Get looks up a session by its token.
func Get(id string) (*Session, bool) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := sessions[id]
	return s, ok
}

// Destroy removes a session. Unknown tokens are ignored.
func Destroy(id string) {
	mu.Lock()
	delete(sessions, id)
	mu.Unlock()
}
