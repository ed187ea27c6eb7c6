package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SiteDir       string
	DBDir         string
	WebDir        string
	Environment   string
	CommitTimeout int64
	OpenBrowser   bool
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:    getEnv("SERVER_PORT", "5050"),
		SiteDir:       getEnv("SITE_DIR", "."),
		DBDir:         getEnv("DB_DIR", "db"),
		WebDir:        getEnv("WEB_DIR", "web"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CommitTimeout: getEnvAsInt64("COMMIT_TIMEOUT", 30), // seconds
		OpenBrowser:   getEnvAsBool("OPEN_BROWSER", true),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
