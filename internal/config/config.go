package config

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env    string `envconfig:"APP_ENV" default:"development"`
	Port   int    `envconfig:"APP_PORT" default:"8080"`
	DB     DBConfig
	CORS   CORSConfig
	Redis  RedisConfig
	OpenAI OpenAIConfig
	Admin  AdminConfig
}

// Postgres connection, assembled from the standard POSTGRES_* parts
type DBConfig struct {
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	Name     string `envconfig:"POSTGRES_DB" required:"true"`
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

// CORS configuration; the kiosk frontend is the only allowed origin
type CORSConfig struct {
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

// Redis, used as the host-notification outbox. Optional: when Addr is empty
// notifications are logged instead of queued.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// OpenAI powers OCR/STT/TTS. Optional: without a key the stub provider is
// used and every AI endpoint answers with its fallback payload.
type OpenAIConfig struct {
	APIKey      string `envconfig:"OPENAI_API_KEY"`
	VisionModel string `envconfig:"OPENAI_VISION_MODEL" default:"gpt-4o-mini"`
}

// Optional bootstrap admin user, created at startup if absent
type AdminConfig struct {
	Username string `envconfig:"ADMIN_USERNAME"`
	Password string `envconfig:"ADMIN_PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.Port < 1 || c.DB.Port > 65535 {
		return fmt.Errorf("invalid POSTGRES_PORT: %d", c.DB.Port)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if c.CORS.FrontendURL == "" {
		return fmt.Errorf("FRONTEND_URL must not be empty")
	}
	if (c.Admin.Username == "") != (c.Admin.Password == "") {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set together")
	}
	return nil
}

// DSN builds the pgx connection string from the POSTGRES_* parts.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.Name)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
