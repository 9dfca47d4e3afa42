package domain

import "context"

// CatalogSource loads the ordered product list once at startup
type CatalogSource interface {
	Load(ctx context.Context) ([]Product, error)
}

// Catalog is the read-only product collection used by the engine.
type Catalog interface {
	All() []Product
	GetByID(id string) (Product, bool)
}

// ConversationStore persists per-conversation state.
// Get returns ErrConversationNotFound for unknown ids.
type ConversationStore interface {
	Get(ctx context.Context, id string) (*Conversation, error)
	Save(ctx context.Context, conv *Conversation) error
	Delete(ctx context.Context, id string) error
}
