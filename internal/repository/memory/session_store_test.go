package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"clinic-assistant-be/internal/dto"
)

func msg(text string, isUser bool) dto.ChatMessage {
	return dto.ChatMessage{Id: text, Text: text, IsUser: isUser, Timestamp: time.Now()}
}

func TestSessionStoreAppendAndHistory(t *testing.T) {
	s := NewSessionStore()

	s.Append(ChatPrefix, "user-1", msg("hello", true))
	s.Append(ChatPrefix, "user-1", msg("hi there", false))

	history := s.History(ChatPrefix, "user-1")
	assert.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Text)
	assert.True(t, history[0].IsUser)
	assert.False(t, history[1].IsUser)
}

func TestSessionStorePrefixesAreIsolated(t *testing.T) {
	s := NewSessionStore()

	s.Append(ChatPrefix, "user-1", msg("chat message", true))
	s.Append(DbChatPrefix, "user-1", msg("db question", true))

	assert.Len(t, s.History(ChatPrefix, "user-1"), 1)
	assert.Len(t, s.History(DbChatPrefix, "user-1"), 1)
	assert.Equal(t, "db question", s.History(DbChatPrefix, "user-1")[0].Text)
}

func TestSessionStoreClear(t *testing.T) {
	s := NewSessionStore()

	s.Append(ChatPrefix, "user-1", msg("hello", true))
	s.Clear(ChatPrefix, "user-1")

	assert.Nil(t, s.History(ChatPrefix, "user-1"))
}

func TestSessionStoreHistoryIsACopy(t *testing.T) {
	s := NewSessionStore()

	s.Append(ChatPrefix, "user-1", msg("original", true))
	history := s.History(ChatPrefix, "user-1")
	history[0].Text = "mutated"

	assert.Equal(t, "original", s.History(ChatPrefix, "user-1")[0].Text)
}

func TestSessionStoreConcurrentAppends(t *testing.T) {
	s := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(ChatPrefix, "user-1", msg(fmt.Sprintf("m%d", i), true))
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.History(ChatPrefix, "user-1"), 50)
}
