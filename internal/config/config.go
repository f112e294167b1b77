package config

import (
	"os"
	"strconv"
	"strings"

	"go-manpower/internal/shared/connection"
)

// Config is the process configuration read from the environment.
type Config struct {
	Port               string
	DB                 connection.DBConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	SchedulingPath     string
	CORSAllowedOrigins []string
	MaxConnectRetries  int
}

func FromEnv() Config {
	return Config{
		Port: getEnv("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "manpower"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        getEnv("KAFKA_BROKER", "localhost:9092"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SchedulingPath:     getEnv("SCORING_CONFIG", "scheduling.yaml"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		MaxConnectRetries:  getEnvInt("DB_CONNECT_RETRIES", 10),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
