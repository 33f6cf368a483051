package main

import (
	"hifi-api-go/services/tidal"
	"net/http"

	"github.com/gorilla/mux"
)

// setupRoutes configures all HTTP routes for the API
func setupRoutes(router *mux.Router, svc *tidal.Service) {
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	router.HandleFunc("/", indexHandler).Methods(http.MethodGet)

	// Every endpoint answers with and without the trailing slash
	handle := func(path string, h http.HandlerFunc) {
		router.HandleFunc(path, h).Methods(http.MethodGet)
		router.HandleFunc(path+"/", h).Methods(http.MethodGet)
	}

	handle("/track", getTrack(svc))
	handle("/search", searchTracks(svc))
	handle("/cover", getCover(svc))
}
