package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	SecretKey          string
	JWTExpirationHours int
	Port               string
	UploadDir          string
}

// Load reads .env (if present) and assembles configuration from the
// environment with local-dev fallbacks.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=blog_db port=5432 sslmode=disable"),
		SecretKey:          getEnv("SECRET_KEY", "secret_key_change_me"),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 12),
		Port:               getEnv("PORT", "8080"),
		UploadDir:          getEnv("UPLOAD_DIR", "./web/dist/uploads"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
