package tidal

import (
	"context"
	"encoding/json"
	"errors"
	"hifi-api-go/config"
	"hifi-api-go/logcolors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Service ties the token acquirer, the catalog client and the shaping
// functions together. It holds no mutable state.
type Service struct {
	client        *Client
	tokens        *TokenAcquirer
	imagesBaseURL string
}

// NewService builds a Service from the loaded configuration. The same
// httpClient is used for the token exchange and the catalog calls.
func NewService(conf config.Config, httpClient *http.Client) *Service {
	return &Service{
		client: NewClient(httpClient, conf.Configuration.APIBaseURL,
			conf.Credentials.StaticToken, conf.Configuration.CountryCode),
		tokens: NewTokenAcquirer(httpClient, conf.Configuration.AuthURL,
			conf.Credentials.ClientID, conf.Credentials.ClientSecret),
		imagesBaseURL: conf.Configuration.ImagesBaseURL,
	}
}

// Track resolves the stream URL of a track at the given quality.
//
// An access token is acquired first and only logged; the catalog calls are
// authorized with the static token. Playback info and metadata are then
// fetched concurrently and both awaited before either error is reported.
func (s *Service) Track(ctx context.Context, id int64, quality string) (*TrackResult, error) {
	token, err := s.tokens.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	log.Infof("%s Acquired %s token %s (expires in %ds), not used for catalog requests",
		logcolors.LogToken, token.TokenType, maskToken(token.AccessToken), token.ExpiresIn)

	var playbackInfo, trackInfo []byte
	var g errgroup.Group
	g.Go(func() error {
		var err error
		playbackInfo, err = s.client.PlaybackInfo(ctx, id, quality)
		return err
	})
	g.Go(func() error {
		var err error
		trackInfo, err = s.client.TrackInfo(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	audioURL, err := ExtractTrackURL(playbackInfo)
	if err != nil {
		if errors.Is(err, ErrManifestNotFound) {
			log.Warnf("%s No manifest for track %d at quality %s", logcolors.LogManifest, id, quality)
		}
		return nil, err
	}

	if !json.Valid(trackInfo) {
		return nil, errors.New("failed to parse track info: invalid JSON")
	}

	log.Infof("%s Resolved stream URL for track %d (%s)", logcolors.LogTrack, id, quality)
	return &TrackResult{
		SongInfo:         trackInfo,
		TrackInfo:        playbackInfo,
		OriginalTrackURL: audioURL,
	}, nil
}

// Search returns the provider's search response body untouched. The body
// must still be valid JSON.
func (s *Service) Search(ctx context.Context, query string) (json.RawMessage, error) {
	body, err := s.client.SearchTracks(ctx, query)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, errors.New("failed to parse search response: invalid JSON")
	}

	log.Infof("%s Search for %q returned %d bytes", logcolors.LogSearch, query, len(body))
	return json.RawMessage(body), nil
}

// CoversByID returns the album cover of a single track
func (s *Service) CoversByID(ctx context.Context, id int64) ([]CoverResult, error) {
	body, err := s.client.TrackInfo(ctx, id)
	if err != nil {
		return nil, err
	}

	covers, err := CoversFromTrack(s.imagesBaseURL, body)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s Track %d -> album %s", logcolors.LogCover, id, covers[0].ID)
	return covers, nil
}

// CoversByQuery returns the covers of the first MaxSearchCovers search results
func (s *Service) CoversByQuery(ctx context.Context, query string) ([]CoverResult, error) {
	body, err := s.client.SearchTracks(ctx, query)
	if err != nil {
		return nil, err
	}

	covers, err := CoversFromSearch(s.imagesBaseURL, body, MaxSearchCovers)
	if err != nil {
		return nil, err
	}

	for _, c := range covers {
		log.Debugf("%s Track %s (%s)", logcolors.LogCover, c.ID, c.Name)
	}
	log.Infof("%s %d cover(s) for %q", logcolors.LogCover, len(covers), query)
	return covers, nil
}
