// HTTP transport for the Hatchet catalog API
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/shared"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const breakerName = "hatchet-api"

// Client performs rate limited, circuit broken GET and POST calls against the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *log.Logger
}

// ClientOption configures a [Client].
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying [http.Client].
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithClientLogger sets the logger used for per-call debug output.
func WithClientLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLimiter replaces the request rate limiter. A nil limiter disables limiting.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(c *Client) { c.limiter = l }
}

// NewClient creates a catalog API client from cfg.
func NewClient(cfg shared.HatchetConfig, opts ...ClientOption) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		logger:     shared.DiscardLogger(),
	}
	if cfg.RateLimit > 0 {
		burst := max(cfg.Burst, 1)
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
		IsSuccessful: func(err error) bool {
			// Client side rejections (4xx) say nothing about service health.
			return err == nil || errors.Is(err, errClientStatus)
		},
	})

	return c
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil, nil)
}

// Post performs a POST request with a JSON body and the given extra headers.
func (c *Client) Post(ctx context.Context, url string, header http.Header, body []byte) ([]byte, error) {
	return c.do(ctx, http.MethodPost, url, header, body)
}

var errClientStatus = errors.New("client error status")

func (c *Client) do(ctx context.Context, method, url string, header http.Header, body []byte) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", shared.ErrTransport, err)
		}
	}

	start := time.Now()
	data, err := c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, url, header, body)
	})
	elapsed := time.Since(start)
	metrics.RecordTransport(method, elapsed, err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %w: %v", shared.ErrTransport, shared.ErrServiceUnavailable, err)
		}
		c.logger.Debug("request failed", "method", method, "url", url, "elapsed", elapsed, "error", err)
		return nil, err
	}

	c.logger.Debug("request complete", "method", method, "url", url, "elapsed", elapsed, "bytes", len(data))
	return data, nil
}

func (c *Client) roundTrip(ctx context.Context, method, url string, header http.Header, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrTransport, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("%w: %w: %s %s returned status %d", shared.ErrTransport, shared.ErrAPIRequest, method, url, resp.StatusCode)
		if resp.StatusCode < http.StatusInternalServerError {
			return nil, fmt.Errorf("%w (%w)", err, errClientStatus)
		}
		return nil, err
	}
	return data, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
