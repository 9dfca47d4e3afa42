package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrConversationNotFound is returned when a conversation id is unknown or expired
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrCatalogUnavailable is returned when the catalog source cannot be read
	ErrCatalogUnavailable = errors.New("catalog source unavailable")

	// ErrSessionUnavailable is returned when the conversation store fails
	ErrSessionUnavailable = errors.New("conversation store unavailable")
)
