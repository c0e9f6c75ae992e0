package config

import "os"

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string
	JWTSecret  string
	BotAPIKey  string
	ServerPort string
}

func Load() *Config {
	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "miniapp"),
		DBPath:     getEnv("DB_PATH", "db.sqlite3"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		BotAPIKey:  getEnv("BOT_API_KEY", "bot-api-key-change-me"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
