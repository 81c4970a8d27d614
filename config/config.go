package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы хранилища.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const (
	defaultSQLitePath = "hackathon.db"
	defaultServerPort = 5050
	defaultAdminUser  = "admin"
)

// Database описывает выбранный бэкенд хранилища.
type Database struct {
	Driver string
	DSN    string
}

// R2 — параметры S3-совместимого бакета для архивов экспорта.
type R2 struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

// Enabled сообщает, заданы ли все параметры бакета.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKeyID != "" && r.SecretAccessKey != "" &&
		r.BucketName != "" && r.PublicBaseURL != ""
}

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	Database           Database
	ServerPort         int
	LogLevel           slog.Level
	CORSAllowedOrigins []string
	AdminUser          string
	AdminPasswordHash  string
	R2                 R2
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup собирает конфигурацию через произвольную функцию поиска переменных.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		AdminUser:         defaultAdminUser,
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH"),
		R2: R2{
			AccountID:       get("R2_ACCOUNT_ID"),
			AccessKeyID:     get("R2_ACCESS_KEY_ID"),
			SecretAccessKey: get("R2_SECRET_ACCESS_KEY"),
			BucketName:      get("R2_BUCKET_NAME"),
			PublicBaseURL:   get("R2_PUBLIC_BASE_URL"),
		},
	}

	// Наличие строки подключения к Postgres выбирает серверный бэкенд.
	pgURL := get("POSTGRES_URL")
	if pgURL == "" {
		pgURL = get("DATABASE_URL")
	}
	if pgURL != "" {
		cfg.Database = Database{Driver: DriverPostgres, DSN: pgURL}
	} else {
		path := get("SQLITE_PATH")
		if path == "" {
			path = defaultSQLitePath
		}
		cfg.Database = Database{Driver: DriverSQLite, DSN: path}
	}

	cfg.ServerPort = defaultServerPort
	if portStr := get("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
		}
		if port <= 0 || port > 65535 {
			return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
		}
		cfg.ServerPort = port
	}

	if lvl := get("LOG_LEVEL"); lvl != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
		}
	}

	if origins := get("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	if user := get("ADMIN_USER"); user != "" {
		cfg.AdminUser = user
	}

	return cfg, nil
}
