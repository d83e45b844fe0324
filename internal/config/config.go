package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const EnvProduction = "production"

type Config struct {
	Port        string
	Environment string

	GeminiAPIKey            string
	AssistantModel          string
	AssistantTemperature    float32
	AssistantTimeout        time.Duration
	AssistantMaxRetries     int
	AssistantRetryBaseDelay time.Duration
	AssistantRateLimit      float64
	AssistantRateBurst      int

	SessionSecret string
	SessionTTL    time.Duration

	RedisAddr          string
	IdempotencyTTL     time.Duration
	KafkaBroker        string
	OutboxPollInterval time.Duration
	ConnectRetries     int
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),

		// API_KEY masih diterima untuk deployment lama
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		AssistantModel:          getEnv("ASSISTANT_MODEL", "gemini-2.5-flash"),
		AssistantTemperature:    float32(getEnvFloat("ASSISTANT_TEMPERATURE", 0.5)),
		AssistantTimeout:        getEnvDuration("ASSISTANT_TIMEOUT", 60*time.Second),
		AssistantMaxRetries:     getEnvInt("ASSISTANT_MAX_RETRIES", 3),
		AssistantRetryBaseDelay: getEnvDuration("ASSISTANT_RETRY_BASE_DELAY", 500*time.Millisecond),
		AssistantRateLimit:      getEnvFloat("ASSISTANT_RATE_LIMIT", 1),
		AssistantRateBurst:      getEnvInt("ASSISTANT_RATE_BURST", 5),

		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 12*time.Hour),

		RedisAddr:          getEnv("REDIS_ADDR", ""),
		IdempotencyTTL:     getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		KafkaBroker:        getEnv("KAFKA_BROKER", ""),
		OutboxPollInterval: getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
		ConnectRetries:     getEnvInt("CONNECT_RETRIES", 5),
	}

	// dev: secret acak per proses, session hilang saat restart
	if cfg.SessionSecret == "" && !cfg.IsProduction() {
		cfg.SessionSecret = randomSecret()
	}
	return cfg
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("GEMINI_API_KEY (or API_KEY) environment variable is not set")
	}
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	if c.AssistantTemperature < 0 || c.AssistantTemperature > 2 {
		return fmt.Errorf("ASSISTANT_TEMPERATURE must be between 0 and 2")
	}
	if c.AssistantTimeout <= 0 {
		return fmt.Errorf("ASSISTANT_TIMEOUT must be positive")
	}
	if c.AssistantMaxRetries < 0 {
		return fmt.Errorf("ASSISTANT_MAX_RETRIES must not be negative")
	}
	if c.AssistantRateLimit <= 0 || c.AssistantRateBurst <= 0 {
		return fmt.Errorf("ASSISTANT_RATE_LIMIT and ASSISTANT_RATE_BURST must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.ConnectRetries <= 0 {
		return fmt.Errorf("CONNECT_RETRIES must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
