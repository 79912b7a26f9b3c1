package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/radichu/radichu-serve/internal/apperrors"
)

// Client fetches daily program schedules from the upstream provider.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a schedule client for the given upstream base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// URL returns the upstream schedule URL for a date and channel. Exposed so
// callers can log the exact URL a failed fetch attempted.
func (c *Client) URL(date, channel string) string {
	return fmt.Sprintf("%s/v4/program/station/date/%s/%s.json", c.baseURL, date, channel)
}

// Fetch retrieves the schedule JSON for a broadcast date and channel.
// The body is validated as JSON and relayed byte-for-byte; the caller
// controls response shaping.
func (c *Client) Fetch(ctx context.Context, date, channel string) ([]byte, error) {
	url := c.URL(date, channel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Upstream("failed to build schedule request").WithInternal("url=%s", url).Wrap(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, apperrors.Timeout("schedule request timed out").WithInternal("url=%s", url).Wrap(err)
		}
		return nil, apperrors.Upstream("schedule request failed").WithInternal("url=%s", url).Wrap(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Upstream("schedule provider returned an error").
			WithInternal("url=%s status=%d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Upstream("failed to read schedule response").WithInternal("url=%s", url).Wrap(err)
	}

	if !json.Valid(body) {
		return nil, apperrors.Upstream("schedule provider returned invalid JSON").
			WithInternal("url=%s bytes=%d", url, len(body))
	}

	return body, nil
}

// isTimeout reports whether err is a network timeout (client deadline
// expiry surfaces as a net.Error, not context.DeadlineExceeded).
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
