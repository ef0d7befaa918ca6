// Package menuservice talks to the remote food court menu endpoint.
package menuservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"foodcourt/internal/config"

	"go.uber.org/zap"
)

// maxBodyBytes caps the menu body read from the endpoint.
const maxBodyBytes = 8 << 20

var (
	// ErrServiceUnavailable covers transport failures, non-2xx responses and
	// undecodable bodies from the menu endpoint.
	ErrServiceUnavailable = errors.New("menu service unavailable")

	// ErrNotAnImage reports a probe that answered 2xx with a non-image body.
	ErrNotAnImage = errors.New("resource is not an image")
)

// StatusError is a non-2xx answer from the endpoint.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// retryable reports whether another attempt may succeed.
func (e *StatusError) retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Fetcher is what the UI needs from the menu service.
type Fetcher interface {
	FetchMenuData(ctx context.Context) (*Payload, error)
	ProbeImage(ctx context.Context, url string) error
}

// Client fetches menu data with a per-attempt timeout and bounded retries.
type Client struct {
	http   *http.Client
	log    *zap.Logger
	url    string
	cfg    config.Config
	sleepF func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient builds a client for cfg.APIURL, suffixed with the food-court id
// found in cfg.PagePath, if any.
func NewClient(cfg config.Config, log *zap.Logger, opts ...Option) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Client{
		http:   &http.Client{},
		log:    log,
		url:    EndpointURL(cfg.APIURL, FoodCourtID(cfg.PagePath)),
		cfg:    cfg,
		sleepF: sleep,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// URL returns the resolved endpoint.
func (c *Client) URL() string { return c.url }

// FetchMenuData performs the single menu fetch of a session. Every failure
// is reported as ErrServiceUnavailable wrapping the last cause.
func (c *Client) FetchMenuData(ctx context.Context) (*Payload, error) {
	var lastErr error
	backoff := c.cfg.RetryBackoff

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.log.Debug("retrying menu fetch",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
				zap.Error(lastErr))
			if err := c.sleepF(ctx, backoff); err != nil {
				lastErr = err
				break
			}
			backoff *= 2
		}

		p, err := c.fetchOnce(ctx)
		if err == nil {
			c.log.Info("menu fetched",
				zap.String("url", c.url),
				zap.Int("records", len(p.Menus)),
				zap.Int("attempts", attempt+1))
			return p, nil
		}
		lastErr = err
		if !shouldRetry(ctx, err) {
			break
		}
	}

	c.log.Warn("menu fetch failed", zap.String("url", c.url), zap.Error(lastErr))
	return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) (*Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: c.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return DecodePayload(body)
}

func shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, ErrMalformedPayload) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.retryable()
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ProbeImage checks that url serves an image. It is best-effort and never
// retried: any error means the caller should fall back to a placeholder.
func (c *Client) ProbeImage(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrNotAnImage
	}
	if c.cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ProbeTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build probe: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mt, "image/") {
		return ErrNotAnImage
	}
	return nil
}
