package config

import "os"

type Config struct {
	DatabaseURL  string
	JWTSecret    string
	Port         string
	Environment  string
	SeedDemoData bool
}

func Load() *Config {
	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", "teampulse.db"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("APP_ENV", "development"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
