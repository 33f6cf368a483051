package config

import (
	"os"
	"reflect"
	"testing"
)

func TestConfigDefaultValues(t *testing.T) {
	// Clear any existing env vars that might interfere
	envVars := []string{
		"CLIENT_ID",
		"CLIENT_SECRET",
		"TIDAL_TOKEN",
		"PORT",
		"LOG_LEVEL",
		"CORS_ALLOWED_ORIGINS",
		"TIDAL_API_BASE_URL",
		"TIDAL_AUTH_URL",
		"TIDAL_IMAGES_BASE_URL",
		"TIDAL_COUNTRY_CODE",
	}

	// Store original values
	originalValues := make(map[string]string)
	for _, key := range envVars {
		originalValues[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		// Restore original values
		for key, value := range originalValues {
			if value != "" {
				os.Setenv(key, value)
			}
		}
	}()

	cfg, err := load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{
			name:     "Port default",
			got:      cfg.Configuration.Port,
			expected: "5000",
		},
		{
			name:     "LogLevel default",
			got:      cfg.Configuration.LogLevel,
			expected: "info",
		},
		{
			name:     "APIBaseURL default",
			got:      cfg.Configuration.APIBaseURL,
			expected: "https://api.tidal.com",
		},
		{
			name:     "AuthURL default",
			got:      cfg.Configuration.AuthURL,
			expected: "https://auth.tidal.com/v1/oauth2/token",
		},
		{
			name:     "ImagesBaseURL default",
			got:      cfg.Configuration.ImagesBaseURL,
			expected: "https://resources.tidal.com/images",
		},
		{
			name:     "CountryCode default",
			got:      cfg.Configuration.CountryCode,
			expected: "US",
		},
		{
			name:     "ClientID default is empty",
			got:      cfg.Credentials.ClientID,
			expected: "",
		},
		{
			name:     "StaticToken default is empty",
			got:      cfg.Credentials.StaticToken,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if !reflect.DeepEqual(cfg.Configuration.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("Expected CORS origins [*], got %v", cfg.Configuration.CORSAllowedOrigins)
	}
}

func TestConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("CLIENT_ID", "client-123")
	t.Setenv("CLIENT_SECRET", "secret-456")
	t.Setenv("TIDAL_TOKEN", "static-789")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("TIDAL_API_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("TIDAL_COUNTRY_CODE", "GB")

	cfg, err := load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"ClientID override", cfg.Credentials.ClientID, "client-123"},
		{"ClientSecret override", cfg.Credentials.ClientSecret, "secret-456"},
		{"StaticToken override", cfg.Credentials.StaticToken, "static-789"},
		{"Port override", cfg.Configuration.Port, "8080"},
		{"LogLevel override", cfg.Configuration.LogLevel, "debug"},
		{"APIBaseURL override", cfg.Configuration.APIBaseURL, "http://127.0.0.1:9000"},
		{"CountryCode override", cfg.Configuration.CountryCode, "GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	expectedOrigins := []string{"http://localhost:3000", "https://example.com"}
	if !reflect.DeepEqual(cfg.Configuration.CORSAllowedOrigins, expectedOrigins) {
		t.Errorf("Expected CORS origins %v, got %v", expectedOrigins, cfg.Configuration.CORSAllowedOrigins)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("TIDAL_TOKEN", "from-env")

	cfg := Load()
	if cfg.Credentials.StaticToken != "from-env" {
		t.Errorf("Expected static token from environment, got %q", cfg.Credentials.StaticToken)
	}
}
