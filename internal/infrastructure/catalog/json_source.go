package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/laptopfinder/backend/internal/domain"
)

// JSONSource loads the catalog from a JSON array of products on disk
type JSONSource struct {
	path string
}

// NewJSONSource creates a source for the given file
func NewJSONSource(path string) *JSONSource {
	return &JSONSource{path: path}
}

// Load reads and decodes the file. Records without an id get a random one.
func (s *JSONSource) Load(ctx context.Context) ([]domain.Product, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	return decodeProducts(f)
}

// decodeProducts is shared with the HTTP feed source.
func decodeProducts(r io.Reader) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", domain.ErrCatalogUnavailable, err)
	}
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.NewString()
		}
	}
	return products, nil
}
