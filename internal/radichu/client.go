// Package radichu obtains streaming playlist manifests from the radiko API.
//
// It performs the two-step token handshake (auth1 hands out a token plus a
// window into the shared auth key; auth2 validates the derived partial key)
// and then retrieves the live or timefree playlist for a station. Segment
// download and decryption are out of scope; only manifests pass through.
package radichu

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Header names used by the radiko authentication protocol.
const (
	headerApp        = "X-Radiko-App"
	headerAppVersion = "X-Radiko-App-Version"
	headerUser       = "X-Radiko-User"
	headerDevice     = "X-Radiko-Device"
	headerAuthToken  = "X-Radiko-AuthToken"
	headerKeyLength  = "X-Radiko-KeyLength"
	headerKeyOffset  = "X-Radiko-KeyOffset"
	headerPartialKey = "X-Radiko-Partialkey"
)

// manifestPrefix is the mandatory first line of an HLS playlist.
const manifestPrefix = "#EXTM3U"

// Client talks to the radiko streaming API. It implements
// playlist.Fetcher for the gateway's playlist routes.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a playlist client from the collaborator configuration.
// Unset fields fall back to the public radiko defaults.
func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.timeout(),
		},
	}
}

// FetchPlaylist authenticates against the streaming API and returns the
// playlist manifest for a station. Empty ft/to select the live stream;
// otherwise the timefree playlist for that range is fetched.
//
// Error messages double as client-visible response bodies, so they name
// the failing step without internal detail.
func (c *Client) FetchPlaylist(ctx context.Context, stationID, ft, to string) (string, error) {
	if stationID == "" {
		return "", errors.New("station not found")
	}

	token, err := c.authorize(ctx)
	if err != nil {
		return "", err
	}

	playlistURL := c.liveURL(stationID)
	if ft != "" || to != "" {
		playlistURL = c.timefreeURL(stationID, ft, to)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, playlistURL, nil)
	if err != nil {
		return "", errors.New("playlist request failed")
	}
	req.Header.Set(headerAuthToken, token)

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", errors.New("playlist request timed out")
		}
		return "", errors.New("playlist request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", errors.New("station not found")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", errors.New("playlist request failed")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.New("playlist request failed")
	}

	manifest := string(body)
	if !strings.HasPrefix(manifest, manifestPrefix) {
		return "", errors.New("unexpected playlist response")
	}

	return manifest, nil
}

// authorize runs the auth1/auth2 handshake and returns a session token.
func (c *Client) authorize(ctx context.Context) (string, error) {
	resp, err := c.doAuth(ctx, c.cfg.Auth1Endpoint, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.New("playlist authentication failed")
	}

	token := resp.Header.Get(headerAuthToken)
	offset, offsetErr := strconv.Atoi(resp.Header.Get(headerKeyOffset))
	length, lengthErr := strconv.Atoi(resp.Header.Get(headerKeyLength))
	if token == "" || offsetErr != nil || lengthErr != nil {
		return "", errors.New("playlist authentication failed")
	}

	partial, err := partialKey(c.cfg.AuthKey, offset, length)
	if err != nil {
		return "", errors.New("playlist authentication failed")
	}

	extra := map[string]string{
		headerAuthToken:  token,
		headerPartialKey: partial,
	}
	resp2, err := c.doAuth(ctx, c.cfg.Auth2Endpoint, extra)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp2.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp2.Body)

	if resp2.StatusCode < 200 || resp2.StatusCode > 299 {
		return "", errors.New("playlist authentication failed")
	}

	return token, nil
}

// doAuth issues a GET to an auth endpoint with the app identification
// headers plus any handshake-specific extras.
func (c *Client) doAuth(ctx context.Context, endpoint string, extra map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.New("playlist authentication failed")
	}

	req.Header.Set(headerApp, c.cfg.AppName)
	req.Header.Set(headerAppVersion, c.cfg.AppVersion)
	req.Header.Set(headerUser, c.cfg.UserID)
	req.Header.Set(headerDevice, c.cfg.Device)
	for k, v := range extra {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, errors.New("playlist authentication timed out")
		}
		return nil, errors.New("playlist authentication failed")
	}
	return resp, nil
}

// liveURL builds the simulcast playlist URL for a station.
func (c *Client) liveURL(stationID string) string {
	return fmt.Sprintf("%s/%s/_definst_/simul-stream.stream/playlist.m3u8", c.cfg.StreamBase, stationID)
}

// timefreeURL builds the timefree playlist URL for a station and range.
func (c *Client) timefreeURL(stationID, ft, to string) string {
	q := url.Values{}
	q.Set("station_id", stationID)
	q.Set("ft", ft)
	q.Set("to", to)
	return c.cfg.TimefreeEndpoint + "?" + q.Encode()
}

// partialKey derives the base64 partial key from the shared auth key using
// the offset and length handed out by auth1.
func partialKey(key string, offset, length int) (string, error) {
	if offset < 0 || length <= 0 || offset+length > len(key) {
		return "", fmt.Errorf("key window [%d:%d] out of range", offset, offset+length)
	}
	return base64.StdEncoding.EncodeToString([]byte(key[offset : offset+length])), nil
}

// isTimeout reports whether err is a network timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
