package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// PasswordConfig holds the pepper appended to every password and the bcrypt cost.
type PasswordConfig struct {
	Pepper     string
	SaltRounds int
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// LoadConfig reads the optional env file at path, then the process
// environment. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "storefront")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("JWT_EXPIRY_HOURS", 2)
	v.SetDefault("SALT_ROUNDS", 10)
	v.SetDefault("RATE_LIMIT_RPS", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Password: PasswordConfig{
			Pepper:     v.GetString("BCRYPT_PASSWORD"),
			SaltRounds: v.GetInt("SALT_ROUNDS"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports configuration that would make the server unusable.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("config: JWT_EXPIRY_HOURS must be positive, got %d", c.JWT.ExpiryHours)
	}
	if c.Password.Pepper == "" {
		return errors.New("config: BCRYPT_PASSWORD is required")
	}
	if c.Password.SaltRounds < bcrypt.MinCost || c.Password.SaltRounds > bcrypt.MaxCost {
		return fmt.Errorf("config: SALT_ROUNDS must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, c.Password.SaltRounds)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
