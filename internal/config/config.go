package config

import "os"

type Config struct {
	Port        string
	BackendURL  string
	LogLevel    string
	Environment string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "3000"),
		BackendURL:  getEnv("BACKEND_URL", "http://localhost:8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("ENVIRONMENT", "development"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
