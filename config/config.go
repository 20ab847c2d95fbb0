package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Server config
const DEFAULT_HTTP_PORT = "8080"
const SHUTDOWN_TIMEOUT = 5 * time.Second

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0
const REDIS_CONNECT_MAX_RETRIES = 5
const REDIS_CONNECT_MAX_ELAPSED = 10 * time.Second

// Redis circuit breaker config
const REDIS_BREAKER_FAILURES = 3
const REDIS_BREAKER_OPEN_FOR = 30 * time.Second

// Reading history config
const READINGS_HISTORY_SIZE = 7
const SESSION_COOKIE_NAME = "glucose_session"
const SESSION_COOKIE_MAX_AGE_SECONDS = 60 * 60 * 24 * 30

// Input limits (mg/dL)
const MAX_GLUCOSE_MGDL = 1000

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DIABETES_FACTS_RESOURCE = "diabetes_facts.json"

// Config holds runtime settings resolved from the environment.
type Config struct {
	Env           string
	Port          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// RedisConnectRetries bounds the startup PING retries.
	RedisConnectRetries int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// Load reads the environment, falling back to the package defaults.
func Load() Config {
	return Config{
		Env:           getenv("APP_ENV", "prod"),
		Port:          getenv("PORT", DEFAULT_HTTP_PORT),
		RedisAddr:     getenv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword: getenv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:       getenvInt("REDIS_DB", REDIS_DB),

		RedisConnectRetries: getenvInt("REDIS_CONNECT_RETRIES", REDIS_CONNECT_MAX_RETRIES),
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
