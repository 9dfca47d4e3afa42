// Package catalog loads the product catalog and serves it from memory.
package catalog

import (
	"context"
	"fmt"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
	"github.com/laptopfinder/backend/internal/metrics"
)

// Source names accepted by Open
const (
	SourceSample = "sample"
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
	SourceHTTP   = "http"
)

// Options selects and parameterizes the catalog source
type Options struct {
	Source            string
	Path              string
	URL               string
	RequestsPerSecond float64
}

// NewSource returns the catalog source named by opts.Source
func NewSource(opts Options) (domain.CatalogSource, error) {
	switch opts.Source {
	case SourceSample, "":
		return SampleSource{}, nil
	case SourceJSON:
		return NewJSONSource(opts.Path), nil
	case SourceSQLite:
		return NewSQLiteSource(opts.Path), nil
	case SourceHTTP:
		return NewHTTPSource(opts.URL, opts.RequestsPerSecond), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", opts.Source)
	}
}

// Open loads the catalog once and returns the in-memory store
func Open(ctx context.Context, opts Options) (*Store, error) {
	source, err := NewSource(opts)
	if err != nil {
		return nil, err
	}

	products, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}

	store := NewStore(products)
	metrics.CatalogSize.Set(float64(store.Len()))
	logging.Info().Str("source", opts.Source).Int("products", store.Len()).Msg("catalog loaded")

	return store, nil
}
