package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// Provider credentials. None of these are validated at startup; a missing
	// value only shows up once the provider rejects a request.
	Credentials struct {
		ClientID     string `envconfig:"CLIENT_ID" default:""`
		ClientSecret string `envconfig:"CLIENT_SECRET" default:""`
		StaticToken  string `envconfig:"TIDAL_TOKEN" default:""`
	}

	Configuration struct {
		Port               string   `envconfig:"PORT" default:"5000"`
		LogLevel           string   `envconfig:"LOG_LEVEL" default:"info"`
		CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
		// TIDAL endpoints
		APIBaseURL    string `envconfig:"TIDAL_API_BASE_URL" default:"https://api.tidal.com"`
		AuthURL       string `envconfig:"TIDAL_AUTH_URL" default:"https://auth.tidal.com/v1/oauth2/token"`
		ImagesBaseURL string `envconfig:"TIDAL_IMAGES_BASE_URL" default:"https://resources.tidal.com/images"`
		CountryCode   string `envconfig:"TIDAL_COUNTRY_CODE" default:"US"`
	}
}

// load loads the configuration from the environment.
func load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warnf("Error loading env config: %v", err)
	}

	cfg := Config{}
	err = envconfig.Process("", &cfg)
	return cfg, err
}

// Load reads the configuration once. Callers keep the returned value and pass
// it on; there is no package-level copy.
func Load() Config {
	c, err := load()
	if err != nil {
		log.WithError(err).Warnf("Unable to load configuration")
	}

	return c
}
