package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port          string `yaml:"port"`
	DatabaseURL   string `yaml:"database_url"`
	JWTSecret     string `yaml:"jwt_secret"`
	JWTIssuer     string `yaml:"jwt_issuer"`
	JWTTTLMinutes int    `yaml:"jwt_ttl_minutes"`
	// RedisURL is optional; without it token revocation stays in process.
	RedisURL string `yaml:"redis_url"`
	Timezone string `yaml:"timezone"`
	PageSize int    `yaml:"page_size"`
	LogLevel string `yaml:"log_level"`
	// SamplePath replaces the built-in sample dataset when set.
	SamplePath string `yaml:"sample_path"`
}

func defaults() Config {
	return Config{
		Port:          "8080",
		JWTSecret:     "dev-secret-change",
		JWTIssuer:     "hr-dashboard",
		JWTTTLMinutes: 60,
		Timezone:      "UTC",
		PageSize:      10,
		LogLevel:      "info",
	}
}

// Load builds the configuration in three layers: defaults, the YAML file
// named by CONFIG_PATH, then environment variables (a .env file is loaded
// into the environment first when present).
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := defaults()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config file: %w", err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTTTLMinutes = getEnvInt("JWT_TTL_MINUTES", cfg.JWTTTLMinutes)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)
	cfg.PageSize = getEnvInt("PAGE_SIZE", cfg.PageSize)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.SamplePath = getEnv("SAMPLE_PATH", cfg.SamplePath)

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL is required"))
	}
	if c.JWTTTLMinutes <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be positive"))
	}
	if c.PageSize <= 0 || c.PageSize > 200 {
		errs = append(errs, errors.New("PAGE_SIZE must be between 1 and 200"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	return errors.Join(errs...)
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
