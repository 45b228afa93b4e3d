package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Брокеры для рассылки тревог
const (
	BrokerMemory = "memory"
	BrokerRedis  = "redis"
	BrokerNATS   = "nats"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Fanout Config
	Broker  string `env:"BROKER" envDefault:"memory"`
	NATSURL string `env:"NATS_URL" envDefault:"nats://localhost:4222"`

	// Webhook Config
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookSecret  string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`

	// Scoring Config
	AnomalyContamination float64       `env:"ANOMALY_CONTAMINATION" envDefault:"0.1"`
	AnomalyTrees         int           `env:"ANOMALY_TREES" envDefault:"100"`
	AnomalySeed          uint64        `env:"ANOMALY_SEED" envDefault:"42"`
	DetectorCacheTTL     time.Duration `env:"DETECTOR_CACHE_TTL" envDefault:"0s"`
	AlertScoreThreshold  float64       `env:"ALERT_SCORE_THRESHOLD" envDefault:"50"`

	// Stats Config
	DashboardWindowDays int `env:"DASHBOARD_WINDOW_DAYS" envDefault:"7"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Разрешенные Origin для WebSocket, "*" разрешает все
	WSAllowedOrigins []string `env:"WS_ALLOWED_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		DBMaxConns:           int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogFormat:            getEnv("LOG_FORMAT", "json"),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
		Broker:               getEnv("BROKER", BrokerMemory),
		NATSURL:              getEnv("NATS_URL", "nats://localhost:4222"),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		AnomalyContamination: getEnvAsFloat("ANOMALY_CONTAMINATION", 0.1),
		AnomalyTrees:         getEnvAsInt("ANOMALY_TREES", 100),
		AnomalySeed:          uint64(getEnvAsInt("ANOMALY_SEED", 42)),
		DetectorCacheTTL:     getEnvAsDuration("DETECTOR_CACHE_TTL", 0),
		AlertScoreThreshold:  getEnvAsFloat("ALERT_SCORE_THRESHOLD", 50),
		DashboardWindowDays:  getEnvAsInt("DASHBOARD_WINDOW_DAYS", 7),
		APIKeys:              getEnvAsList("API_KEYS"),
		WSAllowedOrigins:     getEnvAsList("WS_ALLOWED_ORIGINS"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры и диапазоны
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.AnomalyContamination <= 0 || c.AnomalyContamination > 0.5 {
		return fmt.Errorf("ANOMALY_CONTAMINATION must be in (0, 0.5], got %v", c.AnomalyContamination)
	}
	if c.AnomalyTrees < 1 {
		return fmt.Errorf("ANOMALY_TREES must be positive, got %d", c.AnomalyTrees)
	}
	if c.AlertScoreThreshold < 0 || c.AlertScoreThreshold > 100 {
		return fmt.Errorf("ALERT_SCORE_THRESHOLD must be in [0, 100], got %v", c.AlertScoreThreshold)
	}
	switch c.Broker {
	case BrokerMemory, BrokerRedis, BrokerNATS:
	default:
		return fmt.Errorf("unknown BROKER %q", c.Broker)
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
