// Package session persists conversations between chat turns.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/laptopfinder/backend/internal/domain"
)

const (
	DefaultTTL      = 24 * time.Hour
	cleanupInterval = 10 * time.Minute
)

// storedConversation represents a single conversation with expiration
type storedConversation struct {
	data       []byte
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory conversation store with TTL support.
// Conversations are kept serialized so callers never share state with the store.
type MemoryStore struct {
	data  map[string]storedConversation
	ttl   time.Duration
	mutex sync.RWMutex
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryStore creates a new in-memory store. ttl <= 0 uses DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	store := &MemoryStore{
		data: make(map[string]storedConversation),
		ttl:  ttl,
		now:  time.Now,
		stop: make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired conversations every 10 minutes
	go store.cleanupExpired(cleanupInterval)

	return store
}

// Get retrieves a conversation by id
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	s.mutex.RLock()
	item, exists := s.data[id]
	s.mutex.RUnlock()

	if !exists || s.now().After(item.expiration) {
		return nil, domain.ErrConversationNotFound
	}

	var conv domain.Conversation
	if err := json.Unmarshal(item.data, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// Save stores a conversation and refreshes its TTL
func (s *MemoryStore) Save(ctx context.Context, conv *domain.Conversation) error {
	data, err := json.Marshal(conv)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[conv.ID] = storedConversation{
		data:       data,
		expiration: s.now().Add(s.ttl),
	}
	return nil
}

// Delete removes a conversation
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, id)
	return nil
}

// Size returns the current number of stored conversations, expired ones included
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Close stops the cleanup goroutine
func (s *MemoryStore) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}

// cleanupExpired removes expired conversations periodically
func (s *MemoryStore) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

func (s *MemoryStore) removeExpired() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.now()
	for id, item := range s.data {
		if now.After(item.expiration) {
			delete(s.data, id)
		}
	}
}
