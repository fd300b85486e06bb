package user

import (
	"sync"
	"time"
)

// Sessions maps opaque bearer tokens to user ids. In-memory with a TTL:
// restarting the process logs everyone out, which is acceptable for a
// single-process deployment.
type Sessions struct {
	ttl time.Duration

	mu     sync.Mutex
	tokens map[string]session
}

type session struct {
	userID  string
	expires time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{ttl: ttl, tokens: make(map[string]session)}
}

func (s *Sessions) Put(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = session{userID: userID, expires: time.Now().Add(s.ttl)}
}

// Get resolves a token to a user id, dropping it when expired.
func (s *Sessions) Get(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.tokens[token]
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expires) {
		delete(s.tokens, token)
		return "", false
	}
	return sess.userID, true
}

func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}
