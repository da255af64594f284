// Package config builds the process configuration once at startup.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvDevelopment relaxes the JWT_SECRET requirement.
const EnvDevelopment = "development"

// Config holds every setting the server needs. It is read-only after Load.
type Config struct {
	Env            string
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
	RabbitMQURL    string
	MetricsEnabled bool

	// GeneratedSecret is true when JWTSecret was generated for a development run.
	GeneratedSecret bool
}

// Load reads configuration from defaults, an optional config file, a .env file and the environment,
// in increasing order of precedence.
func Load(configFile string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_PORT", ":5001")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=football_finder port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("METRICS_ENABLED", true)
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:            strings.ToLower(v.GetString("APP_ENV")),
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: strings.ToLower(v.GetString("DATABASE_DRIVER")),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		TokenTTL:       v.GetDuration("TOKEN_TTL"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		AllowedOrigins: splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		MetricsEnabled: v.GetBool("METRICS_ENABLED"),
	}

	if !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}

	switch cfg.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != EnvDevelopment {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", cfg.Env)
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.JWTSecret = secret
		cfg.GeneratedSecret = true
	}

	return cfg, nil
}

// splitOrigins turns a comma separated list into trimmed, non-empty origins.
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate development secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
