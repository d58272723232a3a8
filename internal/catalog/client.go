// Package catalog fetches product variants from the remote storefront catalog API
// and normalizes them into model.Variant snapshots.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/metrics"
	"github.com/guttosm/container-order-service/internal/service/cache"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout   = 5 * time.Second
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute

	maxBodyBytes = 1 << 20
)

var (
	// ErrVariantNotFound is returned when the catalog has no variant with the requested id.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrUnexpectedStatus is returned for catalog responses other than 200 and 404.
	ErrUnexpectedStatus = errors.New("unexpected catalog status")
	// ErrInvalidPayload is returned when the catalog body cannot be read as a variant
	// or the variant lacks box dimensions or weight.
	ErrInvalidPayload = errors.New("invalid variant payload")
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithCache sets the size and TTL of the variant cache. A non-positive size disables caching.
func WithCache(size int, ttl time.Duration) Option {
	return func(c *Client) {
		c.cacheSize = size
		c.cacheTTL = ttl
	}
}

// WithCircuitBreaker protects catalog calls with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.breaker = cb
	}
}

// Client is a read-only catalog client. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	breaker   *circuitbreaker.CircuitBreaker
	cache     *cache.TTLCache[string, model.Variant]
	cacheSize int
	cacheTTL  time.Duration
}

// NewClient creates a catalog client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: DefaultTimeout},
		cacheSize: DefaultCacheSize,
		cacheTTL:  DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cacheSize > 0 && c.cacheTTL > 0 {
		c.cache = cache.NewTTLCache[string, model.Variant](c.cacheSize, c.cacheTTL,
			cache.WithName[string, model.Variant]("variants"))
	}
	return c
}

// NewCircuitBreaker returns a breaker that ignores unknown-variant answers, which
// come from a healthy catalog.
func NewCircuitBreaker(cfg circuitbreaker.Config) *circuitbreaker.CircuitBreaker {
	cfg.IsFailure = func(err error) bool {
		return !errors.Is(err, ErrVariantNotFound)
	}
	return circuitbreaker.New(cfg)
}

// CircuitBreaker returns the breaker guarding the catalog, if any.
func (c *Client) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.breaker
}

// Close stops the cache janitor.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Stop()
	}
}

// FetchVariant returns the variant with the given id.
func (c *Client) FetchVariant(ctx context.Context, id string) (model.Variant, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Variant{}, fmt.Errorf("%w: empty id", ErrVariantNotFound)
	}
	if c.cache != nil {
		if v, ok := c.cache.Get(id); ok {
			metrics.RecordCatalogLookup(0, "cache_hit")
			return v, nil
		}
	}

	start := time.Now()
	var v model.Variant
	call := func() error {
		var err error
		v, err = c.fetch(ctx, id)
		return err
	}

	var err error
	if c.breaker != nil {
		err = c.breaker.Execute(ctx, call)
	} else {
		err = call()
	}
	metrics.RecordCatalogLookup(time.Since(start), lookupResult(err))

	if err != nil {
		if !errors.Is(err, ErrVariantNotFound) {
			log.Warn().Err(err).Str("variant_id", id).Msg("Catalog lookup failed")
		}
		return model.Variant{}, err
	}
	if c.cache != nil {
		c.cache.Set(id, v)
	}
	return v, nil
}

func (c *Client) fetch(ctx context.Context, id string) (model.Variant, error) {
	endpoint := fmt.Sprintf("%s/variants/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Variant{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Variant{}, fmt.Errorf("failed to fetch variant %s: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.Variant{}, fmt.Errorf("%w: %s", ErrVariantNotFound, id)
	case resp.StatusCode != http.StatusOK:
		return model.Variant{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.Variant{}, fmt.Errorf("failed to read variant %s: %w", id, err)
	}
	return decodeVariant(body, id)
}

func lookupResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrVariantNotFound):
		return "not_found"
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return "circuit_open"
	default:
		return "error"
	}
}
