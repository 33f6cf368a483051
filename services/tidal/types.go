package tidal

import "encoding/json"

// AccessToken is the result of a client-credentials exchange
type AccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TrackResult is the shaped playback response. Both info members are the
// provider JSON, unmodified.
type TrackResult struct {
	SongInfo         json.RawMessage `json:"Song Info"`
	TrackInfo        json.RawMessage `json:"Track Info"`
	OriginalTrackURL string          `json:"OriginalTrackUrl"`
}

// CoverResult exposes the three fixed-size cover images of a track's album.
// ID and Name carry the provider values as given, null included.
type CoverResult struct {
	ID     json.RawMessage `json:"id"`
	Name   json.RawMessage `json:"name"`
	Large  string          `json:"1280"`
	Medium string          `json:"640"`
	Small  string          `json:"80"`
}

// trackMetadata is the subset of /v1/tracks/{id}/ used for covers.
// Pointers and empty raw messages distinguish absent fields; a present
// null decodes into the raw message as "null".
type trackMetadata struct {
	Album *struct {
		ID    json.RawMessage `json:"id"`
		Cover *string         `json:"cover"`
		Title json.RawMessage `json:"title"`
	} `json:"album"`
}

// searchResponse is the subset of /v1/search/tracks used for covers
type searchResponse struct {
	Items *[]searchItem `json:"items"`
}

type searchItem struct {
	ID    json.RawMessage `json:"id"`
	Title json.RawMessage `json:"title"`
	Album *struct {
		Cover *string `json:"cover"`
	} `json:"album"`
}

// playbackManifest is the decoded form of the base64 manifest string
type playbackManifest struct {
	URLs []string `json:"urls"`
}
