package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// InsecureDefaultJWTSecret is the fallback signing secret used when
// JWT_SECRET_KEY is unset. Kept for interface compatibility with earlier
// deployments; never run production with it.
const InsecureDefaultJWTSecret = "your-secret-key"

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Password     PasswordConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds token signing configuration.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

// AppConfig holds application configuration.
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PasswordConfig holds bcrypt parameters.
type PasswordConfig struct {
	Cost int
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "tagtrack"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	jwtExpiration, err := time.ParseDuration(getEnv("JWT_EXPIRATION_TIME", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_TIME: %w", err)
	}

	secret := getEnv("JWT_SECRET_KEY", "")
	if secret == "" {
		slog.Warn("JWT_SECRET_KEY not set, falling back to insecure default secret")
		secret = InsecureDefaultJWTSecret
	}

	config.JWT = JWTConfig{
		Secret:     secret,
		Expiration: jwtExpiration,
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}
	config.Password = PasswordConfig{Cost: bcryptCost}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		Scopes:       getEnvSlice("GOOGLE_SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_TIME must be positive")
	}
	if c.Password.Cost < 4 || c.Password.Cost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
