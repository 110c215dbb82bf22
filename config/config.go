package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yourusername/customs-ai-bot/internal/domain/constants"
)

// Config holds everything the process reads from the environment. All
// numeric knobs have working defaults; only the optional integrations
// (Telegram, Gemini, external synonym stores) are off when unset.
type Config struct {
	Port string

	// Catalog.
	CatalogPath           string
	CatalogRefreshMinutes int

	// Duty conversion.
	ExchangeRateYER     float64
	CustomsFactor5      float64
	CustomsFactor10     float64
	DefaultDutyCategory int

	// Fuzzy matching.
	DirectThreshold float64
	FuzzyThreshold  float64

	// Sessions.
	SessionTTL time.Duration

	// Synonym store: "memory", "postgres" or "redis".
	SynonymStore  string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Optional integrations.
	TelegramToken string
	GeminiAPIKey  string
	CalculatorURL string

	LogLevel  string
	LogFormat string
}

// Load reads the environment, a .env file included when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:                  getEnv("PORT", "3000"),
		CatalogPath:           getEnv("CATALOG_PATH", "data/catalog.json"),
		CatalogRefreshMinutes: getEnvInt("CATALOG_REFRESH_MINUTES", constants.DefaultCatalogRefreshMinutes),
		ExchangeRateYER:       getEnvFloat("EXCHANGE_RATE_YER", constants.DefaultExchangeRateYER),
		CustomsFactor5:        getEnvFloat("CUSTOMS_FACTOR_5", constants.DefaultFactor5),
		CustomsFactor10:       getEnvFloat("CUSTOMS_FACTOR_10", constants.DefaultFactor10),
		DefaultDutyCategory:   getEnvInt("DEFAULT_DUTY_CATEGORY", constants.DefaultDutyCategory),
		DirectThreshold:       getEnvFloat("FUZZY_DIRECT_THRESHOLD", constants.DirectAcceptScore),
		FuzzyThreshold:        getEnvFloat("FUZZY_ACCEPT_THRESHOLD", constants.FuzzyAcceptScore),
		SessionTTL:            time.Duration(getEnvInt("SESSION_TTL_MINUTES", constants.DefaultSessionTTLMinutes)) * time.Minute,
		SynonymStore:          strings.ToLower(getEnv("SYNONYM_STORE", "memory")),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		TelegramToken:         os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		CalculatorURL:         os.Getenv("CALCULATOR_URL"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "console"),
	}

	switch config.SynonymStore {
	case "memory", "postgres", "redis":
	default:
		return nil, fmt.Errorf("SYNONYM_STORE %q is not one of memory, postgres, redis", config.SynonymStore)
	}
	if config.SynonymStore == "postgres" && config.DatabaseURL == "" {
		return nil, fmt.Errorf("SYNONYM_STORE=postgres requires DATABASE_URL")
	}
	if config.SynonymStore == "redis" && config.RedisAddr == "" {
		return nil, fmt.Errorf("SYNONYM_STORE=redis requires REDIS_ADDR")
	}
	if !(config.ExchangeRateYER > 0) {
		return nil, fmt.Errorf("EXCHANGE_RATE_YER must be positive, got %v", config.ExchangeRateYER)
	}
	if config.DefaultDutyCategory != 5 && config.DefaultDutyCategory != 10 {
		return nil, fmt.Errorf("DEFAULT_DUTY_CATEGORY must be 5 or 10, got %d", config.DefaultDutyCategory)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
