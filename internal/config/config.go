package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"moneyflow/internal/database"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	StorageDriver string
	DataFile      string

	// Database (postgres snapshot backend only)
	DB database.Config
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Storage
		StorageDriver: getEnv("STORAGE_DRIVER", StorageDriverFile),
		DataFile:      getEnv("DATA_FILE", "data/transactions.json"),

		// Database
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "moneyflow"),
			Password: getEnv("DB_PASSWORD", "moneyflow"),
			DBName:   getEnv("DB_NAME", "moneyflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	switch config.StorageDriver {
	case StorageDriverFile, StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want %q or %q)",
			config.StorageDriver, StorageDriverFile, StorageDriverPostgres)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
