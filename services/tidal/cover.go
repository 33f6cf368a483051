package tidal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxSearchCovers caps the number of covers built from one search
const MaxSearchCovers = 10

// DefaultImagesBaseURL is where TIDAL serves cover images
const DefaultImagesBaseURL = "https://resources.tidal.com/images"

// ImageURL derives a cover image URL. Cover ids come dash-separated
// ("a-b-c") and are served from a path of the same segments ("a/b/c").
func ImageURL(baseURL, coverID string, size int) string {
	if baseURL == "" {
		baseURL = DefaultImagesBaseURL
	}
	return fmt.Sprintf("%s/%s/%dx%d.jpg", strings.TrimRight(baseURL, "/"), strings.ReplaceAll(coverID, "-", "/"), size, size)
}

// NewCoverResult assembles a CoverResult in the three fixed sizes
func NewCoverResult(baseURL string, id, name json.RawMessage, coverID string) CoverResult {
	return CoverResult{
		ID:     id,
		Name:   name,
		Large:  ImageURL(baseURL, coverID, 1280),
		Medium: ImageURL(baseURL, coverID, 640),
		Small:  ImageURL(baseURL, coverID, 80),
	}
}

// CoversFromTrack builds the single cover of a track metadata response,
// identified by the album's id and title.
func CoversFromTrack(baseURL string, body []byte) ([]CoverResult, error) {
	var track trackMetadata
	if err := json.Unmarshal(body, &track); err != nil {
		return nil, fmt.Errorf("failed to parse track info: %w", err)
	}

	album := track.Album
	switch {
	case album == nil:
		return nil, missingField("album")
	case len(album.ID) == 0:
		return nil, missingField("album.id")
	case album.Cover == nil:
		return nil, missingField("album.cover")
	case len(album.Title) == 0:
		return nil, missingField("album.title")
	}

	return []CoverResult{NewCoverResult(baseURL, album.ID, album.Title, *album.Cover)}, nil
}

// CoversFromSearch builds one cover per search item, for at most limit items,
// keeping the search order.
func CoversFromSearch(baseURL string, body []byte, limit int) ([]CoverResult, error) {
	var search searchResponse
	if err := json.Unmarshal(body, &search); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if search.Items == nil {
		return nil, missingField("items")
	}

	items := *search.Items
	if len(items) > limit {
		items = items[:limit]
	}

	covers := make([]CoverResult, 0, len(items))
	for i, item := range items {
		switch {
		case len(item.ID) == 0:
			return nil, missingField(fmt.Sprintf("items[%d].id", i))
		case len(item.Title) == 0:
			return nil, missingField(fmt.Sprintf("items[%d].title", i))
		case item.Album == nil || item.Album.Cover == nil:
			return nil, missingField(fmt.Sprintf("items[%d].album.cover", i))
		}
		covers = append(covers, NewCoverResult(baseURL, item.ID, item.Title, *item.Album.Cover))
	}

	return covers, nil
}
