// internal/scraper/client.go
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// defaultUserAgent identifies a common desktop browser. Several of the
// target sites refuse requests from default Go or library clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPClient issues the blocking listing-page requests. It sets a
// browser-like User-Agent, enforces a finite timeout, follows
// redirects, and optionally rate-limits outbound requests. It never
// retries: a failed fetch is reported once and the caller decides
// whether to move on.
type HTTPClient struct {
	httpClient  *http.Client
	userAgent   string
	headers     map[string]string
	rateLimiter *rate.Limiter
}

// ClientConfig defines configuration options for the HTTP client.
type ClientConfig struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string

	// RateLimit is the maximum request rate in requests per second.
	// Zero disables rate limiting.
	RateLimit float64
	RateBurst int
}

// NewHTTPClient creates a new HTTP client with the specified configuration.
func NewHTTPClient(config ClientConfig) *HTTPClient {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.RateBurst == 0 {
		config.RateBurst = 1
	}

	var limiter *rate.Limiter
	if config.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.RateBurst)
	}

	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent:   config.UserAgent,
		headers:     config.Headers,
		rateLimiter: limiter,
	}
}

// Get performs a single HTTP GET request. The caller owns the response
// body. A non-2xx status is not an error here; the fetcher decides
// how to treat it.
func (c *HTTPClient) Get(ctx context.Context, targetURL string) (*http.Response, error) {
	if _, err := url.Parse(targetURL); err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	return c.httpClient.Do(req)
}

// Close releases idle connections held by the client.
func (c *HTTPClient) Close() {
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
