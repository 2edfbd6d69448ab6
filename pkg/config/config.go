package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	Env               string
	BcryptCost        int
	PasswordMinLength int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "4000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		Env:               getEnv("APP_ENV", "development"),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),
		PasswordMinLength: getEnvInt("PASSWORD_MIN_LENGTH", 6),
	}
	return cfg
}

// Production reports whether diagnostic detail must be suppressed in responses.
func (c Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
