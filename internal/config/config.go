package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

const (
	defaultAppName       = "TaskForge"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultJWTAlgorithm  = "HS256"
	defaultAccessExpiry  = 3600 * time.Second
	defaultRefreshExpiry = 86400 * time.Second
	defaultShutdownDelay = 10 * time.Second
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	SecretKey string

	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
}

// Load reads configuration from a .env file (if present) and the environment.
// It fails fast on an unrecognized APP_ENV, missing secrets or non-positive
// token lifetimes rather than degrading silently.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppName:         getEnv("APP_NAME", defaultAppName),
		AppEnv:          strings.ToLower(getEnv("APP_ENV", EnvDevelopment)),
		Port:            getEnv("PORT", defaultPort),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		SecretKey:       os.Getenv("SECRET_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
		JWTAlgorithm:    getEnv("JWT_ALGORITHM", defaultJWTAlgorithm),
		AccessTokenTTL:  defaultAccessExpiry,
		RefreshTokenTTL: defaultRefreshExpiry,
		RedisURL:        os.Getenv("REDIS_URL"),
		ShutdownPeriod:  defaultShutdownDelay,
	}

	switch cfg.AppEnv {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return Config{}, fmt.Errorf("unrecognized APP_ENV %q", cfg.AppEnv)
	}

	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY must be set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY must be set")
	}

	var err error
	if cfg.AccessTokenTTL, err = secondsEnv("JWT_ACCESS_TOKEN_EXPIRES", cfg.AccessTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.RefreshTokenTTL, err = secondsEnv("JWT_REFRESH_TOKEN_EXPIRES", cfg.RefreshTokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return Config{}, fmt.Errorf("token lifetimes must be strictly positive")
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	cfg.DatabaseURL, err = databaseURL(cfg.AppEnv)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// databaseURL prefers DATABASE_URL and otherwise assembles a URL from the
// discrete DB_* variables. The testing environment reads TEST_DB_* so a test
// run can never touch the development database.
func databaseURL(env string) (string, error) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v, nil
	}

	prefix := "DB_"
	if env == EnvTesting {
		prefix = "TEST_DB_"
	}

	var missing []string
	part := func(name string) string {
		v := os.Getenv(prefix + name)
		if v == "" {
			missing = append(missing, prefix+name)
		}
		return v
	}

	user := part("USER")
	password := part("PASSWORD")
	host := part("HOST")
	port := part("PORT")
	name := part("NAME")
	if len(missing) > 0 {
		return "", fmt.Errorf("DATABASE_URL or %s must be set", strings.Join(missing, ", "))
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(user, password),
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   name,
	}
	return u.String(), nil
}

func secondsEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	seconds, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
