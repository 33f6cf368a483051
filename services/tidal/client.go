package tidal

import (
	"context"
	"fmt"
	"hifi-api-go/logcolors"
	"io"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Endpoint names used in logs and UpstreamError
const (
	EndpointToken        = "token"
	EndpointPlaybackInfo = "playbackinfo"
	EndpointTrackInfo    = "trackinfo"
	EndpointSearch       = "search"
)

// Client issues catalog requests authorized with the static bearer token.
// It never inspects the response: bodies are returned as-is whatever the
// status code, and interpreting them is left to the shaping functions.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	staticToken string
	countryCode string
}

// NewClient creates a catalog client. A nil httpClient uses a client without
// a timeout, so a stalled upstream stalls the caller.
func NewClient(httpClient *http.Client, baseURL, staticToken, countryCode string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if countryCode == "" {
		countryCode = "US"
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		staticToken: staticToken,
		countryCode: countryCode,
	}
}

// PlaybackInfo fetches the post-paywall playback info (which carries the
// manifest) for a track at the given audio quality.
func (c *Client) PlaybackInfo(ctx context.Context, id int64, quality string) ([]byte, error) {
	path := fmt.Sprintf("/v1/tracks/%d/playbackinfopostpaywall/v4?audioquality=%s&playbackmode=STREAM&assetpresentation=FULL",
		id, url.QueryEscape(quality))
	return c.get(ctx, EndpointPlaybackInfo, path)
}

// TrackInfo fetches track metadata
func (c *Client) TrackInfo(ctx context.Context, id int64) ([]byte, error) {
	path := fmt.Sprintf("/v1/tracks/%d/?countryCode=%s", id, url.QueryEscape(c.countryCode))
	return c.get(ctx, EndpointTrackInfo, path)
}

// SearchTracks runs a track search
func (c *Client) SearchTracks(ctx context.Context, query string) ([]byte, error) {
	path := fmt.Sprintf("/v1/search/tracks?countryCode=%s&query=%s", url.QueryEscape(c.countryCode), url.QueryEscape(query))
	return c.get(ctx, EndpointSearch, path)
}

func (c *Client) get(ctx context.Context, endpoint, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.staticToken)

	log.Debugf("%s GET %s", logcolors.LogRequest, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("%s %s request failed: %v", logcolors.LogRequest, endpoint, err)
		return nil, &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		log.Warnf("%s %s returned status %d (%d bytes)", logcolors.LogRequest, endpoint, resp.StatusCode, len(body))
	}

	return body, nil
}
