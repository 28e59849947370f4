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
	HTTPPort string
	LogLevel string

	// Каталоги хранения: JSON-коллекции и публичные PDF анонсов
	DataDir   string
	PublicDir string

	// Redis (необязателен: без него история голосов живет в памяти)
	RedisAddr string
	RedisPass string
	RedisDB   int

	// Внешний генеративный API (OpenAI-совместимый)
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string
	LLMTimeout time.Duration

	// Геопараметры
	DuplicateRadiusMeters float64
	HeatmapRadiusMeters   float64
	ClusterRadiusPx       float64
	ClusterMaxZoom        int
	ClusterMinZoom        int
	ClusterMinPoints      int

	// API-ключи для административных маршрутов
	APIKeys []string
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DataDir:   getEnv("DATA_DIR", "data"),
		PublicDir: getEnv("PUBLIC_DIR", "public/announcements"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASSWORD"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMBaseURL: getEnv("LLM_BASE_URL", "https://integrate.api.nvidia.com/v1"),
		LLMModel:   getEnv("LLM_MODEL", "nvidia/nemotron-nano-12b-v2-vl"),
		LLMTimeout: getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),

		DuplicateRadiusMeters: getEnvAsFloat("DUPLICATE_RADIUS_METERS", 100),
		HeatmapRadiusMeters:   getEnvAsFloat("HEATMAP_RADIUS_METERS", 500),
		ClusterRadiusPx:       getEnvAsFloat("CLUSTER_RADIUS_PX", 40),
		ClusterMaxZoom:        getEnvAsInt("CLUSTER_MAX_ZOOM", 13),
		ClusterMinZoom:        getEnvAsInt("CLUSTER_MIN_ZOOM", 0),
		ClusterMinPoints:      getEnvAsInt("CLUSTER_MIN_POINTS", 3),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	return cfg, nil
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
