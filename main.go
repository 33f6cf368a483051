package main

import (
	"hifi-api-go/config"
	"hifi-api-go/logcolors"
	"hifi-api-go/middleware"
	"hifi-api-go/services/tidal"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(log.InfoLevel)
}

func main() {
	conf := config.Load()

	if level, err := log.ParseLevel(conf.Configuration.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("%s Invalid LOG_LEVEL %q, staying at info", logcolors.LogConfig, conf.Configuration.LogLevel)
	}
	logCredentialStatus(conf)

	svc := tidal.NewService(conf, &http.Client{})

	router := mux.NewRouter()
	setupRoutes(router, svc)

	log.Infof("%s Listening on port %s", logcolors.LogServer, conf.Configuration.Port)
	log.Fatal(http.ListenAndServe(":"+conf.Configuration.Port, newHandler(router, conf)))
}

// newHandler chains request logging and CORS around the router
func newHandler(router *mux.Router, conf config.Config) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: conf.Configuration.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	return c.Handler(middleware.LoggingMiddleware(router))
}

// logCredentialStatus reports which credentials are set. Missing ones are not
// fatal: they only surface once the provider rejects a request.
func logCredentialStatus(conf config.Config) {
	creds := map[string]string{
		"CLIENT_ID":     conf.Credentials.ClientID,
		"CLIENT_SECRET": conf.Credentials.ClientSecret,
		"TIDAL_TOKEN":   conf.Credentials.StaticToken,
	}
	for name, value := range creds {
		if value == "" {
			log.Warnf("%s %s is not set", logcolors.LogConfig, name)
		}
	}

	// The client-credentials token is acquired per track request but catalog
	// calls are authorized with TIDAL_TOKEN.
	log.Infof("%s Catalog requests use TIDAL_TOKEN; acquired access tokens are logged only", logcolors.LogConfig)
}
