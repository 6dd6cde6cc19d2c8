package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr          = ":8080"
	defaultDatabaseURL       = "hireme.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTTTL            = "24h"
	defaultStorageDriver     = "local"
	defaultUploadsDir        = "./uploads"
	defaultUploadsURLBase    = "/static/uploads"
	defaultS3PresignTTL      = "15m"
	defaultAuthRatePerMinute = "30"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	Storage StorageConfig

	// RedisURL enables cross-instance realtime fan-out when set.
	RedisURL string

	CORSAllowedOrigins []string
	AuthRatePerMinute  int
}

type StorageConfig struct {
	Driver         string // local | s3
	UploadsDir     string
	UploadsURLBase string

	S3Region     string
	S3Bucket     string
	S3AccessKey  string
	S3SecretKey  string
	S3Endpoint   string
	S3PublicBase string
	S3PresignTTL time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "development"
	}
	cfg.AppEnv = strings.ToLower(appEnv)
	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.AuthRatePerMinute, err = parseIntEnv("AUTH_RATE_PER_MINUTE", defaultAuthRatePerMinute)
	if err != nil {
		return nil, err
	}

	cfg.Storage = StorageConfig{
		Driver:         strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorageDriver))),
		UploadsDir:     strings.TrimSpace(getEnv("UPLOADS_DIR", defaultUploadsDir)),
		UploadsURLBase: strings.TrimRight(strings.TrimSpace(getEnv("UPLOADS_URL_BASE", defaultUploadsURLBase)), "/"),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3AccessKey:    strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:    strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Endpoint:     strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3PublicBase:   strings.TrimRight(strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE")), "/"),
	}
	cfg.Storage.S3PresignTTL, err = parseDurationEnv("S3_PRESIGN_TTL", defaultS3PresignTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.AuthRatePerMinute <= 0 {
		return fmt.Errorf("AUTH_RATE_PER_MINUTE must be > 0")
	}

	switch cfg.Storage.Driver {
	case "local":
		if cfg.Storage.UploadsDir == "" {
			return fmt.Errorf("UPLOADS_DIR must not be empty for STORAGE_DRIVER=local")
		}
	case "s3":
		if cfg.Storage.S3Region == "" || cfg.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_REGION and S3_BUCKET are required for STORAGE_DRIVER=s3")
		}
		if cfg.Storage.S3PresignTTL <= 0 {
			return fmt.Errorf("S3_PRESIGN_TTL must be > 0")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: local, s3")
	}

	if isProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in production JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
