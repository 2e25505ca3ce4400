// Package upstream holds the HTTP clients of the third-party services
// the server looks things up in.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"travelplanner/internal/metrics"
)

const maxBody = 4 << 20

// Client is the shared outbound transport: one http.Client and one limiter
// pacing every call regardless of which service it goes to.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

type Config struct {
	Timeout time.Duration
	// RPS <= 0 disables pacing.
	RPS float64
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	limit := rate.Inf
	burst := 1
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
		burst = max(1, int(cfg.RPS))
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		log:     log.With("component", "upstream"),
	}
}

type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Service, e.Code, e.Body)
}

// get performs one GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, service, rawURL string, header http.Header) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "throttled").Inc()
		return nil, fmt.Errorf("%s: wait for limiter: %w", service, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", service, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "error").Inc()
		return nil, fmt.Errorf("%s: send request: %w", service, redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "error").Inc()
		return nil, fmt.Errorf("%s: read response: %w", service, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(service, "bad_status").Inc()
		c.log.Warn("upstream returned error status",
			"service", service, "status", resp.StatusCode, "duration", time.Since(start))
		return nil, &StatusError{Service: service, Code: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(service, "ok").Inc()
	c.log.Debug("upstream call", "service", service, "status", resp.StatusCode, "duration", time.Since(start))
	return body, nil
}

// redact drops the query of the URL inside a transport error: some providers
// take the API key as a query parameter.
func redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	if u, perr := url.Parse(ue.URL); perr == nil {
		u.RawQuery = ""
		ue.URL = u.String()
	} else {
		ue.URL = "<redacted>"
	}
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
