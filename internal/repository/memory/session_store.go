package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"clinic-assistant-be/internal/dto"
)

// SessionStore keeps per-user chat transcripts in memory. Entries expire an
// hour after their last write, so idle sessions clean themselves up.
//
// Appends lock around the read-modify-write so two concurrent messages for
// the same user cannot drop each other.
type SessionStore struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewSessionStore() *SessionStore {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionStore{cache: c}
}

// Append adds a message to the user's transcript under the given key prefix.
// Chat and database chat transcripts live side by side under different
// prefixes.
func (s *SessionStore) Append(prefix, userId string, msg dto.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := prefix + userId
	var history []dto.ChatMessage
	if x, found := s.cache.Get(key); found {
		history = x.([]dto.ChatMessage)
	}
	history = append(history, msg)
	s.cache.Set(key, history, cache.DefaultExpiration)
}

// History returns a copy of the user's transcript, oldest first.
func (s *SessionStore) History(prefix, userId string) []dto.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, found := s.cache.Get(prefix + userId)
	if !found {
		return nil
	}
	history := x.([]dto.ChatMessage)
	out := make([]dto.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Clear drops the user's transcript.
func (s *SessionStore) Clear(prefix, userId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(prefix + userId)
}

// Key prefixes for the two transcript kinds.
const (
	ChatPrefix   = "session_"
	DbChatPrefix = "db_session_"
)
