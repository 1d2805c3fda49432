package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given env key, loading .env first.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Error loading .env file, falling back to environment")
	}
	return os.Getenv(key)
}

// ConfigOrDefault returns the env value or fallback when unset.
func ConfigOrDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
