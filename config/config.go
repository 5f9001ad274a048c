package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config returns the value of an env key, loading .env if present.
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("Error loading .env file: %v", err)
	}
	return os.Getenv(key)
}

func ConfigInt(key string, fallback int) int {
	v := Config(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
