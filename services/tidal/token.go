package tidal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenAcquirer exchanges the client id/secret for a short-lived access token.
// Nothing is cached: every Acquire call performs a fresh POST.
type TokenAcquirer struct {
	config     clientcredentials.Config
	httpClient *http.Client
}

// NewTokenAcquirer creates an acquirer posting to tokenURL. The credentials
// travel in the form body, not in a Basic auth header.
func NewTokenAcquirer(httpClient *http.Client, tokenURL, clientID, clientSecret string) *TokenAcquirer {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TokenAcquirer{
		config: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		httpClient: withJSONTokenBodies(httpClient),
	}
}

// jsonTokenTransport relabels text/plain token responses whose body is a JSON
// object as application/json. oauth2 decodes text/plain as a form, which
// would drop every field of such a response.
type jsonTokenTransport struct {
	base http.RoundTripper
}

func withJSONTokenBodies(httpClient *http.Client) *http.Client {
	base := httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c := *httpClient
	c.Transport = jsonTokenTransport{base: base}
	return &c
}

func (t jsonTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "text/plain" {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) && json.Valid(body) {
		resp.Header.Set("Content-Type", "application/json")
	}
	return resp, nil
}

// Acquire performs the client-credentials exchange. A response without
// access_token, expires_in or token_type is an error.
func (a *TokenAcquirer) Acquire(ctx context.Context) (AccessToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	tok, err := a.config.Token(ctx)
	if err != nil {
		return AccessToken{}, &UpstreamError{Endpoint: EndpointToken, Err: err}
	}

	if tok.TokenType == "" {
		return AccessToken{}, &UpstreamError{Endpoint: EndpointToken, Err: missingField("token_type")}
	}

	expiresIn, err := parseExpiresIn(tok.Extra("expires_in"))
	if err != nil {
		return AccessToken{}, &UpstreamError{Endpoint: EndpointToken, Err: err}
	}

	return AccessToken{
		AccessToken: tok.AccessToken,
		ExpiresIn:   expiresIn,
		TokenType:   tok.TokenType,
	}, nil
}

// parseExpiresIn reads expires_in from the raw token response, which is a
// JSON number for JSON bodies and a string for form-encoded ones.
func parseExpiresIn(v interface{}) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, missingField("expires_in")
	case float64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("invalid expires_in %q: %w", n, err)
		}
		return int(i), nil
	case string:
		if n == "" {
			return 0, missingField("expires_in")
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("invalid expires_in %q: %w", n, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("invalid expires_in type %T", v)
	}
}

// maskToken keeps enough of a token to correlate log lines without leaking it.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:8] + "****"
}
