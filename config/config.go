package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/Swamy718/Expense-Tracker-backend/db"
)

type Config struct {
	// HTTP server
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
	AllowOrigins    []string

	// Tokens
	SecretKey          string
	Algorithm          string
	AccessTokenExpires time.Duration

	// Storage
	DatabaseURL string

	BcryptCost int

	LogLevel  string
	LogFormat string

	// values that were set but could not be parsed
	parseErrs []string
}

// Load reads .env (if present, without overriding the environment) and the
// environment once. Call Validate before use.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	var parseErrs []string
	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		GinMode:         getEnv("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 15*time.Second, &parseErrs),
		AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),

		SecretKey:          os.Getenv("SECRET_KEY"),
		Algorithm:          getEnv("ALGORITHM", "HS256"),
		AccessTokenExpires: time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30, &parseErrs)) * time.Minute,

		DatabaseURL: getEnv("DATABASE_URL", "sqlite://expense-tracker.db"),

		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost, &parseErrs),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
	cfg.parseErrs = parseErrs
	return cfg
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	errs := append([]string(nil), c.parseErrs...)

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.SecretKey == "" {
		errs = append(errs, "SECRET_KEY is required")
	}
	if _, ok := jwt.GetSigningMethod(c.Algorithm).(*jwt.SigningMethodHMAC); !ok {
		errs = append(errs, fmt.Sprintf("invalid ALGORITHM '%s': must be HS256, HS384 or HS512", c.Algorithm))
	}
	if c.AccessTokenExpires < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid ACCESS_TOKEN_EXPIRE_MINUTES %v: must be at least 1", c.AccessTokenExpires.Minutes()))
	}

	if !db.SupportedScheme(c.DatabaseURL) {
		errs = append(errs, fmt.Sprintf("invalid DATABASE_URL '%s': scheme must be postgres, sqlite or mongodb", c.DatabaseURL))
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Sprintf("invalid BCRYPT_COST %d: must be between %d and %d", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT '%s': must be text or json", c.LogFormat))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Sprintf("invalid GIN_MODE '%s': must be debug, release or test", c.GinMode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// ParseLevel maps LOG_LEVEL values onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL '%s': must be debug, info, warn or error", s)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt records a set but unparsable value in errs and returns the
// default.
func getEnvInt(key string, defaultValue int, errs *[]string) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid %s '%s': must be a whole number", key, value))
		return defaultValue
	}
	return i
}

func getEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid %s '%s': must be a duration such as 15s", key, value))
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
