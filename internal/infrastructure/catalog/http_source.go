package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/laptopfinder/backend/internal/domain"
	"github.com/laptopfinder/backend/internal/logging"
)

const maxFetchAttempts = 3

// HTTPSource fetches the catalog as a JSON array from a remote feed
type HTTPSource struct {
	httpClient  *http.Client
	url         string
	rateLimiter *rate.Limiter
}

// NewHTTPSource creates a feed source. requestsPerSecond <= 0 means 1 request per second.
func NewHTTPSource(url string, requestsPerSecond float64) *HTTPSource {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}

	return &HTTPSource{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:         url,
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), maxFetchAttempts),
	}
}

// doRequest executes an HTTP GET request with proper headers
func (s *HTTPSource) doRequest(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "LaptopFinder/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return resp, nil
}

// Load fetches and decodes the feed, retrying transient failures.
// A 404 is final.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Product, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := s.doRequest(ctx)
		if err != nil {
			logging.Warn().Err(err).Int("attempt", attempt).Str("url", s.url).Msg("catalog fetch failed")
			lastErr = err
			if !s.backoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: feed returned 404", domain.ErrCatalogUnavailable)
		}
		if resp.StatusCode != http.StatusOK || readErr != nil {
			logging.Warn().Int("status", resp.StatusCode).Int("attempt", attempt).Str("url", s.url).Msg("catalog feed error")
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			if !s.backoff(ctx, attempt) {
				return nil, ctx.Err()
			}
			continue
		}

		products, err := decodeProducts(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		logging.Info().Int("products", len(products)).Str("url", s.url).Msg("catalog fetched")
		return products, nil
	}

	return nil, lastErr
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// backoff waits before the next attempt. It returns false when ctx ends first.
// There is no wait after the last attempt.
func (s *HTTPSource) backoff(ctx context.Context, attempt int) bool {
	if attempt >= maxFetchAttempts {
		return ctx.Err() == nil
	}
	t := time.NewTimer(exponentialBackoff(attempt))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
