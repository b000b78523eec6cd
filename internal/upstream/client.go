// Package upstream talks to the external public listings provider. The
// provider is unauthenticated; requests carry only a fixed client
// identifier in the User-Agent header.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// UpstreamError reports a non-2xx provider response. Callers decide whether
// to surface it or substitute the static mock dataset.
type UpstreamError struct {
	Status int
	URL    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d from %s", e.Status, e.URL)
}

type Config struct {
	BaseURL    string
	ClientID   string
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
}

type Client struct {
	baseURL  string
	clientID string
	hc       *http.Client
	limiter  *rate.Limiter
	log      zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 2
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		hc:       &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
		log:      log,
	}
}

// Listings fetches the raw listings array. The metadata first element is
// returned as-is; the service layer discards it.
func (c *Client) Listings(ctx context.Context) ([]Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	req.Header.Set("User-Agent", c.clientID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream get: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &UpstreamError{Status: res.StatusCode, URL: c.baseURL}
	}

	var records []Record
	if err := json.NewDecoder(res.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("upstream decode: %w", err)
	}

	c.log.Debug().
		Int("records", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("upstream fetch ok")
	return records, nil
}
