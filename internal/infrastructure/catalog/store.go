package catalog

import (
	"sort"
	"strings"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
)

// Store is the in-memory, read-only product catalog. It keeps load order and
// indexes products by id. Safe for concurrent readers without locking.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

// NewStore builds a store from an ordered product list.
// When an id repeats, the first product wins.
func NewStore(products []domain.Product) *Store {
	s := &Store{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := s.byID[p.ID]; dup {
			logging.Warn().Str("product_id", p.ID).Msg("duplicate product id in catalog, keeping first")
			continue
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

// All returns every product in catalog order. The slice is shared; callers must not modify it.
func (s *Store) All() []domain.Product {
	return s.products
}

// GetByID looks up a product by id
func (s *Store) GetByID(id string) (domain.Product, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[idx], true
}

// Len returns the number of products
func (s *Store) Len() int {
	return len(s.products)
}

// Brands returns the distinct brand names, sorted
func (s *Store) Brands() []string {
	seen := make(map[string]bool)
	brands := []string{}
	for _, p := range s.products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

// FilterByBrand returns up to limit products, optionally restricted to one brand (case-insensitive).
func (s *Store) FilterByBrand(brand string, limit int) []domain.Product {
	results := []domain.Product{}
	for _, p := range s.products {
		if brand != "" && !strings.EqualFold(p.Brand, brand) {
			continue
		}
		results = append(results, p)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}
