package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

type Config struct {
	AppURL                 string
	StorageDriver          string
	TasksFile              string
	DatabaseDSN            string
	DatabaseDebug          bool
	RedisAddr              string
	RedisTasksKey          string
	RateLimit              int
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "3000")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	rateLimit, err := getEnvAsInt("RATE_LIMIT_PER_MINUTE", 0)
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20)
	if err != nil {
		return Config{}, err
	}
	dbDebug, err := getEnvAsBool("DB_DEBUG", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageFile)),
		TasksFile:              getEnv("TASKS_FILE", "./task.json"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		DatabaseDebug:          dbDebug,
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		RedisTasksKey:          getEnv("REDIS_TASKS_KEY", "tasks"),
		RateLimit:              rateLimit,
		ShutdownTimeoutSeconds: shutdownTimeout,
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	switch cfg.StorageDriver {
	case StorageFile:
		if cfg.TasksFile == "" {
			return fmt.Errorf("TASKS_FILE must not be empty")
		}
	case StorageSQLite:
		if cfg.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN must not be empty")
		}
	case StorageRedis:
		if cfg.RedisTasksKey == "" {
			return fmt.Errorf("REDIS_TASKS_KEY must not be empty")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of %s, %s, %s (got %q)",
			StorageFile, StorageSQLite, StorageRedis, cfg.StorageDriver)
	}
	if cfg.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsBool(key string, defaultVal bool) (bool, error) {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid boolean value for %s: %q", key, v)
		}
		return b, nil
	}
	return defaultVal, nil
}
