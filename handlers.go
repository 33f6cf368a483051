package main

import (
	"context"
	"errors"
	"hifi-api-go/logcolors"
	"hifi-api-go/middleware"
	"hifi-api-go/services/tidal"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	apiVersion = "v1"
	repoURL    = "https://github.com/sachinsenal0x64/Hifi-Tui"

	qualityNotFoundMessage  = "Quality not found. check API docs = " + repoURL + "?tab=readme-ov-file#-api-documentation"
	internalErrorMessage    = "Internal Server Error"
	notFoundMessage         = "Not Found"
	methodNotAllowedMessage = "Method Not Allowed"

	providerName = "tidal"
)

type indexResponse struct {
	API  string `json:"HIFI-API"`
	Repo string `json:"REPO"`
}

// upstreamContext detaches provider calls from the inbound request: a client
// going away does not cancel the calls it started.
func upstreamContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, r).JSON(indexResponse{API: apiVersion, Repo: repoURL})
}

func getTrack(svc *tidal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		id, err := requiredInt(q, "id")
		if err != nil {
			invalidParams(w, r, err)
			return
		}
		quality, err := requiredString(q, "quality")
		if err != nil {
			invalidParams(w, r, err)
			return
		}
		// Accepted and validated for client compatibility; playback info is
		// not region-scoped.
		if _, err := optionalCountry(q); err != nil {
			invalidParams(w, r, err)
			return
		}

		log.Infof("%s Track %d at quality %s", logcolors.LogTrack, id, quality)
		result, err := svc.Track(upstreamContext(r), id, quality)
		if err != nil {
			if errors.Is(err, tidal.ErrManifestNotFound) {
				Respond(w, r).SetProvider(providerName).Error(http.StatusNotFound, qualityNotFoundMessage)
				return
			}
			internalError(w, r, err)
			return
		}

		Respond(w, r).SetProvider(providerName).JSON(result)
	}
}

func searchTracks(svc *tidal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		body, err := svc.Search(upstreamContext(r), query)
		if err != nil {
			internalError(w, r, err)
			return
		}

		Respond(w, r).SetProvider(providerName).Raw(body)
	}
}

func getCover(svc *tidal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		id, err := optionalInt(q, "id")
		if err != nil {
			invalidParams(w, r, err)
			return
		}

		var covers []tidal.CoverResult
		// id=0 counts as absent and falls back to the search query
		if id != 0 {
			covers, err = svc.CoversByID(upstreamContext(r), id)
		} else {
			covers, err = svc.CoversByQuery(upstreamContext(r), q.Get("q"))
		}
		if err != nil {
			internalError(w, r, err)
			return
		}

		Respond(w, r).SetProvider(providerName).JSON(covers)
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, r).Error(http.StatusNotFound, notFoundMessage)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	Respond(w, r).Error(http.StatusMethodNotAllowed, methodNotAllowedMessage)
}

func invalidParams(w http.ResponseWriter, r *http.Request, err error) {
	log.Warnf("%s %s: %v", logcolors.LogRequest, r.URL.Path, err)
	Respond(w, r).Error(http.StatusUnprocessableEntity, err.Error())
}

// internalError logs the cause and answers with a bare 500; details never
// reach the client.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	log.WithField("request_id", middleware.RequestID(r.Context())).
		Errorf("%s %s failed: %v", logcolors.LogWarning, r.URL.Path, err)
	Respond(w, r).Error(http.StatusInternalServerError, internalErrorMessage)
}
