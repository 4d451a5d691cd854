// Package config reads service settings from the environment and the
// optional YAML seed file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/n25shubhamhibare/aqua-lora-watch/internal/auth"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/fleet"
	"github.com/n25shubhamhibare/aqua-lora-watch/internal/ports"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset
const DevJWTSecret = "aqua-lora-watch-dev-secret"

// Config holds application configuration
type Config struct {
	GRPCPort     string
	HTTPPort     string
	TickInterval time.Duration
	SeedFile     string // YAML file overriding the baseline sensors, unit status and devices
	LogLevel     zerolog.Level
	AuthEmail    string
	AuthPassword string
	JWTSecret    string
	SessionTTL   time.Duration
	RandomSeed   int64 // 0 seeds from the clock
	RebootDelay  time.Duration
	TLSCert      string // path to this service's certificate
	TLSKey       string // path to this service's private key
	TLSCA        string // path to the CA certificate
}

// Load reads configuration from environment variables. Unparsable values
// are logged and replaced by their defaults.
func Load() Config {
	return Config{
		GRPCPort:     stringEnv("PORT", "50051"),
		HTTPPort:     stringEnv("HTTP_PORT", "8080"),
		TickInterval: durationEnv("TICK_INTERVAL", ports.DefaultTickInterval),
		SeedFile:     os.Getenv("SEED_FILE"),
		LogLevel:     levelEnv("LOG_LEVEL", zerolog.InfoLevel),
		AuthEmail:    stringEnv("AUTH_EMAIL", auth.DefaultEmail),
		AuthPassword: stringEnv("AUTH_PASSWORD", auth.DefaultPassword),
		JWTSecret:    stringEnv("JWT_SECRET", DevJWTSecret),
		SessionTTL:   durationEnv("SESSION_TTL", auth.DefaultSessionTTL),
		RandomSeed:   intEnv("RANDOM_SEED", 0),
		RebootDelay:  durationEnv("REBOOT_DELAY", fleet.DefaultRebootDelay),
		TLSCert:      os.Getenv("TLS_CERT"),
		TLSKey:       os.Getenv("TLS_KEY"),
		TLSCA:        os.Getenv("TLS_CA"),
	}
}

// TLSEnabled reports whether a certificate was configured
func (c Config) TLSEnabled() bool {
	return c.TLSCert != ""
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}

func intEnv(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int64("default", def).Msg("invalid integer, using default")
		return def
	}
	return n
}

func levelEnv(key string, def zerolog.Level) zerolog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	level, err := zerolog.ParseLevel(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid log level, using default")
		return def
	}
	return level
}
