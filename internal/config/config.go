package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Gateway GatewayConfig
	Store   StoreConfig
	Client  ClientConfig
}

type GatewayConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	RatePerSecond  int
	RateBurst      int
}

type StoreConfig struct {
	Path string
}

type ClientConfig struct {
	Environment  string
	HomeCurrency string
	PageSize     int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env file: %v", err)
	}

	return &Config{
		Gateway: GatewayConfig{
			BaseURL:        getEnv("GATEWAY_BASE_URL", "http://localhost:8080"),
			RequestTimeout: getDurationEnv("GATEWAY_REQUEST_TIMEOUT", 10*time.Second),
			RatePerSecond:  getIntEnv("GATEWAY_RATE_PER_SECOND", 20),
			RateBurst:      getIntEnv("GATEWAY_RATE_BURST", 40),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "bankclient.db"),
		},
		Client: ClientConfig{
			Environment:  getEnv("APP_ENV", "development"),
			HomeCurrency: getEnv("HOME_CURRENCY", "MOP"),
			PageSize:     getIntEnv("DEFAULT_PAGE_SIZE", 20),
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Client.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Client.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Client.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
