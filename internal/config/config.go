package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const minJWTSecretLength = 32

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type LogConfig struct {
	Level string
	// File enables rotating file output when set.
	File string
}

type RateLimitConfig struct {
	// LoginPerSecond and LoginBurst apply per client IP on public auth routes.
	LoginPerSecond float64
	LoginBurst     int
	// UserPerSecond and UserBurst apply per authenticated user.
	UserPerSecond float64
	UserBurst     int
}

type Config struct {
	AppEnv      string
	Port        string
	JWTSecret   string
	DB          DBConfig
	RedisAddr   string
	KafkaBroker string
	Log         LogConfig
	RateLimit   RateLimitConfig
}

// Load reads .env when present and then the process environment. It is
// called once in main; nothing else reads the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "3000"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: getFloat("RATE_LIMIT_LOGIN_RPS", 1),
			LoginBurst:     getInt("RATE_LIMIT_LOGIN_BURST", 5),
			UserPerSecond:  getFloat("RATE_LIMIT_USER_RPS", 5),
			UserBurst:      getInt("RATE_LIMIT_USER_BURST", 20),
		},
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Validate checks what the API server needs to start.
func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if len(c.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength))
	}
	if c.DB.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	return errors.Join(errs...)
}

// RequireKafka is checked by the worker and consumer processes.
func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}
