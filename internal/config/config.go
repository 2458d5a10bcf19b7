package config

import (
	"os"
	"strconv"
)

// Config carries all environment-driven settings for the API server.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	DB     DBConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port       string
	CORSOrigin string
}

type LoggerConfig struct {
	Level         string
	Encoding      string
	DisableCaller bool
}

// DBConfig selects the persistence backend. When DSN is empty the server runs
// on the in-memory store, optionally seeded from SeedFile (a db.json-style
// snapshot), and persists snapshots back to it.
type DBConfig struct {
	DSN      string
	SeedFile string
}

type AdminConfig struct {
	// Secret is the shared admin password; JWTSecret signs admin session
	// tokens issued after a successful unlock.
	Secret    string
	JWTSecret string
}

// LoadEnv reads the configuration from the environment with defaults suitable
// for local development.
func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "5000"),
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
		Logger: LoggerConfig{
			Level:         getEnv("LOGGER_LEVEL", "info"),
			Encoding:      getEnv("LOGGER_ENCODING", "console"),
			DisableCaller: getEnvBool("LOGGER_DISABLE_CALLER", false),
		},
		DB: DBConfig{
			DSN:      getEnv("DB_DSN", ""),
			SeedFile: getEnv("DB_SEED_FILE", ""),
		},
		Admin: AdminConfig{
			Secret:    getEnv("ADMIN_SECRET", "Priya123@at"),
			JWTSecret: getEnv("ADMIN_JWT_SECRET", "A_VERY_SECURE_SECRET_KEY_REPLACE_LATER"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
