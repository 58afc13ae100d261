package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sheets   SheetsConfig
	Refresh  RefreshConfig
	Secrets  SecretsConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// SheetsConfig holds Google Sheets configuration. When SpreadsheetID or the
// credentials are empty the server falls back to stored settings, and
// finally to the local sqlite holdings store.
type SheetsConfig struct {
	SpreadsheetID string
	// CredentialsFile points at a service account JSON key file.
	CredentialsFile string
	// Range is the A1 range holding the table, usually just the sheet name.
	Range string
}

// RefreshConfig bounds the concurrent quote fan-out during a refresh.
type RefreshConfig struct {
	Workers int
}

// SecretsConfig holds the fernet key used to encrypt stored credentials.
type SecretsConfig struct {
	FernetKey string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/stock_tracker.db"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("SHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_SA_KEY_FILE", ""),
			Range:           getEnv("SHEET_RANGE", "Sheet1"),
		},
		Refresh: RefreshConfig{
			Workers: getEnvInt("REFRESH_WORKERS", 4),
		},
		Secrets: SecretsConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "") == "true",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.Refresh.Workers < 1 {
		return nil, fmt.Errorf("REFRESH_WORKERS must be at least 1, got %d", config.Refresh.Workers)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
// Unparseable values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
