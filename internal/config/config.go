package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	PaymentAPIURL   string
	PaymentAPIKey   string
	PaymentCurrency string
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults. JWTSecret has
// no default on purpose; the server refuses to start without one.
func Load() *Config {
	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "5000"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/schoolofrock?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("ACCESS_TOKEN_SECRET"),
		PaymentAPIURL:   getEnv("PAYMENT_API_URL", "https://api.stripe.com"),
		PaymentAPIKey:   os.Getenv("PAYMENT_SECRET_KEY"),
		PaymentCurrency: getEnv("PAYMENT_CURRENCY", "usd"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
