package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort int
	LogLevel string

	AuthJWTSecret       string
	AuthSessionDuration time.Duration
	AuthLinkTTL         time.Duration
	// PublicBaseURL prefixes the sign-in links sent to users.
	PublicBaseURL string

	OperatorWorkers   int
	OperatorQueueSize int
}

var envPrefixes = []string{"POSTGRES_", "HTTP_", "LOG_", "AUTH_", "OPERATOR_"}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres.address":      "localhost",
	"postgres.port":         "5433",
	"postgres.db":           "postgres",
	"postgres.username":     "postgres",
	"postgres.password":     "testpassword",
	"http.port":             9446,
	"log.level":             "info",
	"auth.jwt_secret":       "local-development-secret",
	"auth.session_duration": "720h",
	"auth.link_ttl":         "15m",
	"auth.public_base_url":  "http://localhost:9446",
	"operator.workers":      1,
	"operator.queue_size":   1000,
}

// envKey maps POSTGRES_ADDRESS to postgres.address and AUTH_LINK_TTL to
// auth.link_ttl. Variables outside the known prefixes are ignored.
func envKey(name string) string {
	for _, prefix := range envPrefixes {
		if strings.HasPrefix(name, prefix) {
			return strings.Replace(strings.ToLower(name), "_", ".", 1)
		}
	}
	return ""
}

// ProcessEnvironmentVariables layers the built-in defaults, an optional YAML
// file named by CONFIG_FILE and the environment, in that order.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{
		PostgresAddress:     k.String("postgres.address"),
		PostgresPort:        k.String("postgres.port"),
		PostgresDB:          k.String("postgres.db"),
		PostgresUsername:    k.String("postgres.username"),
		PostgresPassword:    k.String("postgres.password"),
		HTTPPort:            k.Int("http.port"),
		LogLevel:            k.String("log.level"),
		AuthJWTSecret:       k.String("auth.jwt_secret"),
		AuthSessionDuration: k.Duration("auth.session_duration"),
		AuthLinkTTL:         k.Duration("auth.link_ttl"),
		PublicBaseURL:       strings.TrimRight(k.String("auth.public_base_url"), "/"),
		OperatorWorkers:     k.Int("operator.workers"),
		OperatorQueueSize:   k.Int("operator.queue_size"),
	}

	if cfg.AuthSessionDuration <= 0 {
		return nil, fmt.Errorf("auth.session_duration must be positive")
	}
	if cfg.AuthLinkTTL <= 0 {
		return nil, fmt.Errorf("auth.link_ttl must be positive")
	}

	return cfg, nil
}

func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
