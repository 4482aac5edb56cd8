package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/IrutingaboRaissa/amasimbi-sub000/pkg/config"
)

// Config carries everything the server needs at startup. All listed
// environment variables are required; loading panics when one is missing.
// In particular there is no fallback value for JWT_SECRET_KEY — an
// unconfigured signing secret is a fatal startup error, never a default.
type Config struct {
	config.GlobalConfig
	JWTSecretKey    string
	PostgresDSN     string
	RedisDBURL      string
	RedisDBPort     string
	RedisDBPassword string
	RedisMaxRetries int
	RedisPoolSize   int
}

func Load() *Config {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment variables")
	}
	return &Config{
		GlobalConfig:    *config.LoadGlobalConfig(),
		JWTSecretKey:    getEnv("JWT_SECRET_KEY"),
		PostgresDSN:     getEnv("POSTGRES_DSN"),
		RedisDBURL:      getEnv("REDIS_DB_URL"),
		RedisDBPort:     getEnv("REDIS_DB_PORT"),
		RedisDBPassword: getEnv("REDIS_DB_PASSWORD"),
		RedisMaxRetries: 3,
		RedisPoolSize:   10,
	}
}

// getEnv retrieves the value of the environment variable named by the key.
func getEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	} else {
		panic("critical config missing: " + key)
	}
}
