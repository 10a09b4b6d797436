package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/daimoniac/echotool/internal/errors"
)

// Config represents the complete application configuration. It is resolved
// once at startup and treated as immutable afterwards.
type Config struct {
	App           AppConfig
	Contact       ContactConfig
	Servers       []Server
	HTTP          HTTPConfig
	Observability ObservabilityConfig
}

// AppConfig identifies the service
type AppConfig struct {
	Name    string
	Version string
}

// ContactConfig holds the support contact published in the API document
type ContactConfig struct {
	Name  string
	URL   string
	Email string
}

// Server is one base URL the service is reachable on
type Server struct {
	URL         string `yaml:"url" json:"url"`
	Description string `yaml:"description" json:"description"`
}

// HTTPConfig configures the HTTP listener
type HTTPConfig struct {
	Port int
}

// ObservabilityConfig configures logging and tracing
type ObservabilityConfig struct {
	LogLevel     string
	OTLPEndpoint string
}

// Load loads configuration from environment variables, falling back to
// compiled-in defaults. Unrecognized environment keys are ignored. Malformed
// values for typed fields are reported as permanent errors so the process
// aborts before opening a listener.
func Load() (*Config, error) {
	port, err := getEnvInt("PORT", 8000)
	if err != nil {
		return nil, err
	}

	servers, err := parseServers(os.Getenv("SERVERS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Echo Tool Server"),
			Version: getEnv("APP_VERSION", "0.1.12"),
		},
		Contact: ContactConfig{
			Name:  getEnv("CONTACT_NAME", "API Support"),
			URL:   getEnv("CONTACT_URL", "https://www.example.com/support"),
			Email: getEnv("CONTACT_EMAIL", "support@example.com"),
		},
		Servers: servers,
		HTTP: HTTPConfig{
			Port: port,
		},
		Observability: ObservabilityConfig{
			LogLevel:     getEnv("LOG_LEVEL", "warn"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		},
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.NewPermanentf("APP_NAME must not be empty")
	}

	if _, err := semver.NewVersion(c.App.Version); err != nil {
		return errors.NewPermanentf("APP_VERSION %q is not a valid semantic version: %v", c.App.Version, err)
	}

	switch strings.ToLower(c.Observability.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.NewPermanentf("invalid LOG_LEVEL: %s (must be debug, info, warn, or error)", c.Observability.LogLevel)
	}

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return errors.NewPermanentf("invalid PORT: %d (must be 1-65535)", c.HTTP.Port)
	}

	if c.Contact.URL != "" {
		if _, err := url.ParseRequestURI(c.Contact.URL); err != nil {
			return errors.NewPermanentf("invalid CONTACT_URL: %s", c.Contact.URL)
		}
	}

	if c.Contact.Email != "" {
		if _, err := mail.ParseAddress(c.Contact.Email); err != nil {
			return errors.NewPermanentf("invalid CONTACT_EMAIL: %s", c.Contact.Email)
		}
	}

	if len(c.Servers) == 0 {
		return errors.NewPermanentf("SERVERS must list at least one server")
	}

	for i, server := range c.Servers {
		if server.URL == "" {
			return errors.NewPermanentf("SERVERS entry %d is missing a url", i)
		}
		if _, err := url.ParseRequestURI(server.URL); err != nil {
			return errors.NewPermanentf("SERVERS entry %d has an invalid url: %s", i, server.URL)
		}
	}

	return nil
}

// parseServers parses the SERVERS environment value, a YAML or JSON list of
// {url, description} pairs. An empty value yields the development default.
func parseServers(value string) ([]Server, error) {
	if value == "" {
		return []Server{
			{URL: "http://localhost:8000", Description: "Development Server"},
		}, nil
	}

	var servers []Server
	if err := yaml.Unmarshal([]byte(value), &servers); err != nil {
		return nil, errors.NewPermanentf("malformed SERVERS value: %v", err)
	}

	return servers, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewPermanent(fmt.Errorf("malformed %s value %q: %w", key, value, err))
	}
	return intValue, nil
}
