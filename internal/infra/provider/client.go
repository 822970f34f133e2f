package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"flightclaims/internal/domain/flight"
	"flightclaims/internal/pkg/config"
	"flightclaims/internal/pkg/errs"
)

const (
	maxIdleConns        = 10
	maxConnsPerHost     = 5
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second

	apiKeyHeader = "X-Api-Key"
)

// Client talks to the aviation-data API. It maps transport-level outcomes to
// the engine's error taxonomy: 4xx → ErrProviderRequest (not retryable),
// 5xx and timeouts → ErrProviderUnavailable (retryable upstream).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type ClientOption func(*Client)

// WithHTTPClient overrides the pooled default (useful for testing).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(cfg config.ProviderConfig, logger *slog.Logger, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxConnsPerHost:     maxConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchMovements retrieves movements at an airport for a bounded window.
// The window must already respect the provider's per-call maximum; splitting
// wider spans is the Fetcher's job. An empty result set is valid — no
// movements, not an error.
func (c *Client) FetchMovements(ctx context.Context, airport string, direction flight.Direction, from, to time.Time) ([]flight.MovementRecord, error) {
	reqURL := fmt.Sprintf("%s/flights/airports/iata/%s/%s/%s",
		c.baseURL,
		url.PathEscape(airport),
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)

	q := url.Values{}
	q.Set("direction", string(direction))
	q.Set("withCancelled", "true")
	q.Set("withCargo", "false")
	q.Set("withPrivate", "false")
	reqURL += "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProviderRequest)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures and timeouts are retryable.
		return nil, errs.Mark(err, errs.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fall through to decode
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider rejected request: status %d", resp.StatusCode)),
			errs.ErrProviderRequest,
		)
	default:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider unavailable: status %d", resp.StatusCode)),
			errs.ErrProviderUnavailable,
		)
	}

	var raw movementsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errs.Mark(err, errs.ErrProviderUnavailable)
	}

	entries := raw.Departures
	if direction == flight.DirectionArrival {
		entries = raw.Arrivals
	}

	records := make([]flight.MovementRecord, 0, len(entries))
	for _, e := range entries {
		rec, err := toMovementRecord(e)
		if err != nil {
			c.logger.Warn("rejecting movement with malformed timestamp",
				"airport", airport, "number", e.Number)
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
