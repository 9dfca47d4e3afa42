package session

import (
	"context"
	"fmt"
	"time"

	"github.com/laptopfinder/backend/internal/domain"
)

// Store names accepted by Open
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Store is a conversation store that owns resources
type Store interface {
	domain.ConversationStore
	Close() error
}

// Open returns the conversation store named by kind
func Open(ctx context.Context, kind, redisURL string, ttl time.Duration) (Store, error) {
	switch kind {
	case StoreMemory, "":
		return NewMemoryStore(ttl), nil
	case StoreRedis:
		store, err := NewRedisStore(ctx, redisURL, ttl)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session store %q", kind)
	}
}
