package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/ethicallogix/assignment-maker/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr      string        `env:"SERVER_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database configuration
	DatabaseURL         string               `env:"DATABASE_URL,notEmpty"`
	DBMaxConns          int                  `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int                  `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration        `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration        `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration        `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBConnectRetry      pkgRetry.RetryConfig `envPrefix:"DB_CONNECT_RETRY_"`

	// Text generation service configuration
	GenerationCfg GenerationConfig

	// Illustration service configuration
	IllustrationCfg IllustrationConnectorConfig `envPrefix:"IMAGE_"`

	// Admin account
	AdminUsername string `env:"ADMIN_USERNAME,notEmpty"`
	AdminPassword string `env:"ADMIN_PASSWORD,notEmpty"`

	// Session and render cache lifetimes
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h"`
	CacheTTL   time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// File upload configuration
	FileUploadCfg FileUploadConfig

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GenerationConfig holds the Gemini text generation settings
type GenerationConfig struct {
	APIKey  string        `env:"GOOGLE_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash-exp"`
	Timeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"120s"`
}

type IllustrationConnectorConfig struct {
	HTTPClientConfig
	GenerateEndpoint string `env:"GENERATE_ENDPOINT" envDefault:"/v1/generate"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"30s"`
	Token                 string        `env:"SERVICE_TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

// FileUploadConfig holds file upload limits
type FileUploadConfig struct {
	MaxLogoSizeMB     int64 `env:"MAX_LOGO_SIZE_MB" envDefault:"2"`
	MaxDocumentSizeMB int64 `env:"MAX_DOCUMENT_SIZE_MB" envDefault:"10"`
}

func (c FileUploadConfig) MaxLogoBytes() int64 {
	return c.MaxLogoSizeMB << 20
}

func (c FileUploadConfig) MaxDocumentBytes() int64 {
	return c.MaxDocumentSizeMB << 20
}

// IllustrationConfigured reports whether the image service can be called.
// The validator rejects include_images requests when it cannot.
func (c *Config) IllustrationConfigured() bool {
	if c.EnableMocks {
		return true
	}
	return c.IllustrationCfg.Url != "" && c.IllustrationCfg.Token != ""
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	if !cfg.EnableMocks && cfg.GenerationCfg.APIKey == "" {
		errs = append(errs, "GOOGLE_API_KEY must be set when ENABLE_MOCKS is false")
	}

	if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
		errs = append(errs, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
	}

	if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
		errs = append(errs, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
	}

	if cfg.FileUploadCfg.MaxLogoSizeMB < 1 || cfg.FileUploadCfg.MaxLogoSizeMB > 10 {
		errs = append(errs, fmt.Sprintf("MAX_LOGO_SIZE_MB must be between 1 and 10, got %d", cfg.FileUploadCfg.MaxLogoSizeMB))
	}

	if cfg.FileUploadCfg.MaxDocumentSizeMB < 1 || cfg.FileUploadCfg.MaxDocumentSizeMB > 50 {
		errs = append(errs, fmt.Sprintf("MAX_DOCUMENT_SIZE_MB must be between 1 and 50, got %d", cfg.FileUploadCfg.MaxDocumentSizeMB))
	}

	if cfg.SessionTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("SESSION_TTL must be at least 1m, got %s", cfg.SessionTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
