package tidal

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// ExtractTrackURL returns the first stream URL of the manifest embedded in a
// playback info response.
//
// Only an absent manifest key yields ErrManifestNotFound. Every other defect
// (a body that is not a JSON object, a non-string manifest, bad base64, a
// manifest that is not JSON, no urls) is an ordinary error.
func ExtractTrackURL(playbackInfo []byte) (string, error) {
	var info map[string]json.RawMessage
	if err := json.Unmarshal(playbackInfo, &info); err != nil {
		return "", fmt.Errorf("failed to parse playback info: %w", err)
	}
	if info == nil {
		return "", errors.New("playback info is not a JSON object")
	}

	raw, ok := info["manifest"]
	if !ok {
		return "", ErrManifestNotFound
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return "", fmt.Errorf("manifest is not a string: %w", err)
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode manifest: %w", err)
	}

	var m playbackManifest
	if err := json.Unmarshal(decoded, &m); err != nil {
		return "", fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.URLs) == 0 {
		return "", errors.New("manifest has no urls")
	}

	return m.URLs[0], nil
}
