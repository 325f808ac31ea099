package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL     string        `env:"DATABASE_URL"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	ConnectRetries  int           `env:"CONNECT_MAX_RETRIES" envDefault:"5"`
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"cad-state-service"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// CAD API Config
	CADAPIURL        string        `env:"CAD_API_URL"`
	CADAPIToken      string        `env:"CAD_API_TOKEN"`
	CADAPITimeout    time.Duration `env:"CAD_API_TIMEOUT" envDefault:"15s"`
	CADAPIMaxRetries int           `env:"CAD_API_MAX_RETRIES" envDefault:"3"`

	// Session Config
	SessionID          string        `env:"SESSION_ID" envDefault:"default"`
	OfficerUsername    string        `env:"OFFICER_USERNAME"`
	DefaultPatrolGroup string        `env:"PATROL_GROUP"`
	SyncInterval       time.Duration `env:"SYNC_INTERVAL" envDefault:"30s"`
	DetailsCacheTTL    time.Duration `env:"DETAILS_CACHE_TTL" envDefault:"5m"`

	// Notification Config
	NotificationPollInterval time.Duration `env:"NOTIFICATION_POLL_INTERVAL" envDefault:"10s"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBMaxConns:               int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		ConnectRetries:           getEnvAsInt("CONNECT_MAX_RETRIES", 5),
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		ServiceName:              getEnv("SERVICE_NAME", "cad-state-service"),
		ShutdownTimeout:          getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		CADAPIURL:                strings.TrimRight(os.Getenv("CAD_API_URL"), "/"),
		CADAPIToken:              os.Getenv("CAD_API_TOKEN"),
		CADAPITimeout:            getEnvAsDuration("CAD_API_TIMEOUT", 15*time.Second),
		CADAPIMaxRetries:         getEnvAsInt("CAD_API_MAX_RETRIES", 3),
		SessionID:                getEnv("SESSION_ID", "default"),
		OfficerUsername:          os.Getenv("OFFICER_USERNAME"),
		DefaultPatrolGroup:       os.Getenv("PATROL_GROUP"),
		SyncInterval:             getEnvAsDuration("SYNC_INTERVAL", 30*time.Second),
		DetailsCacheTTL:          getEnvAsDuration("DETAILS_CACHE_TTL", 5*time.Minute),
		NotificationPollInterval: getEnvAsDuration("NOTIFICATION_POLL_INTERVAL", 10*time.Second),
		WebhookURL:               os.Getenv("WEBHOOK_URL"),
		WebhookSecret:            os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:           getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:        getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:         getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.CADAPIURL == "" {
		return fmt.Errorf("CAD_API_URL environment variable is required")
	}
	if c.SyncInterval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive, got %s", c.SyncInterval)
	}
	if c.NotificationPollInterval <= 0 {
		return fmt.Errorf("NOTIFICATION_POLL_INTERVAL must be positive, got %s", c.NotificationPollInterval)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
