package tidal

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"hifi-api-go/config"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

const (
	testClientID     = "test-client-id"
	testClientSecret = "test-client-secret"
	testStaticToken  = "static-token"
	testDynamicToken = "dynamic-token-abcdef"
)

// fakeTIDAL is an httptest server standing in for the auth and catalog APIs.
// Handlers left nil answer with a sensible default.
type fakeTIDAL struct {
	*httptest.Server

	Token        http.HandlerFunc
	PlaybackInfo http.HandlerFunc
	TrackInfo    http.HandlerFunc
	Search       http.HandlerFunc

	mu       sync.Mutex
	requests []*http.Request
}

func newFakeTIDAL(t *testing.T) *fakeTIDAL {
	t.Helper()

	f := &fakeTIDAL{}
	router := mux.NewRouter()
	router.HandleFunc("/v1/oauth2/token", f.dispatch(func() http.HandlerFunc { return f.Token }, defaultToken)).Methods("POST")
	router.HandleFunc("/v1/tracks/{id}/playbackinfopostpaywall/v4", f.dispatch(func() http.HandlerFunc { return f.PlaybackInfo }, defaultPlaybackInfo)).Methods("GET")
	router.HandleFunc("/v1/tracks/{id}/", f.dispatch(func() http.HandlerFunc { return f.TrackInfo }, defaultTrackInfo)).Methods("GET")
	router.HandleFunc("/v1/search/tracks", f.dispatch(func() http.HandlerFunc { return f.Search }, defaultSearch)).Methods("GET")

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeTIDAL) dispatch(current func() http.HandlerFunc, fallback http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		if h := current(); h != nil {
			h(w, r)
			return
		}
		fallback(w, r)
	}
}

// Requests returns the requests received so far
func (f *fakeTIDAL) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func (f *fakeTIDAL) config() config.Config {
	var conf config.Config
	conf.Credentials.ClientID = testClientID
	conf.Credentials.ClientSecret = testClientSecret
	conf.Credentials.StaticToken = testStaticToken
	conf.Configuration.APIBaseURL = f.URL
	conf.Configuration.AuthURL = f.URL + "/v1/oauth2/token"
	conf.Configuration.ImagesBaseURL = DefaultImagesBaseURL
	conf.Configuration.CountryCode = "US"
	return conf
}

func (f *fakeTIDAL) service() *Service {
	return NewService(f.config(), f.Client())
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func encodeManifest(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal manifest: %v", err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func defaultToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"access_token":"`+testDynamicToken+`","expires_in":86400,"token_type":"Bearer"}`)
}

func defaultPlaybackInfo(w http.ResponseWriter, r *http.Request) {
	manifest := base64.StdEncoding.EncodeToString([]byte(`{"mimeType":"audio/flac","codecs":"flac","urls":["https://sp-pr-fa.audio.tidal.com/track.flac"]}`))
	writeJSON(w, `{"trackId":1,"audioQuality":"LOSSLESS","manifestMimeType":"application/vnd.tidal.bts","manifest":"`+manifest+`"}`)
}

func defaultTrackInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"id":1,"title":"Song","album":{"id":7,"title":"Album","cover":"aa-bb-cc"}}`)
}

func defaultSearch(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, `{"limit":10,"offset":0,"totalNumberOfItems":0,"items":[]}`)
}
