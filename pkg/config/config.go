package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	SMTP   SMTPConfig
	Queue  QueueConfig
	Hook   HookConfig
	Data   DataConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Required      bool          `envconfig:"AUTH_REQUIRED" default:"true"`
	JWTSecret     string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	TokenExpiry   time.Duration `envconfig:"TOKEN_EXPIRY" default:"8h"`
	AdminEmail    string        `envconfig:"ADMIN_EMAIL" default:"admin@mom.local"`
	AdminPassword string        `envconfig:"ADMIN_PASSWORD" default:"admin12345"`
}

// SMTPConfig holds outbound mail relay configuration. Leaving host or
// credentials empty switches email delivery into preview-only mode.
type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" default:""`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASS" default:""`
	Secure   bool   `envconfig:"SMTP_SECURE" default:"false"`
}

// QueueConfig holds email job queue configuration
type QueueConfig struct {
	WorkerInterval time.Duration `envconfig:"JOB_WORKER_INTERVAL" default:"2s"`
	MaxRetries     int           `envconfig:"EMAIL_JOB_MAX_RETRIES" default:"3"`
}

// HookConfig holds browser hook configuration
type HookConfig struct {
	// APIKey guards the hook endpoint; empty disables the check.
	APIKey                 string `envconfig:"HOOK_API_KEY" default:""`
	AutoNoteFromTranscript bool   `envconfig:"AUTO_NOTE_FROM_TRANSCRIPT" default:"true"`
}

// DataConfig holds persistence configuration
type DataConfig struct {
	Dir string `envconfig:"DATA_DIR" default:"data"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.Required && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_REQUIRED is true")
	}
	if c.Queue.WorkerInterval <= 0 {
		return fmt.Errorf("JOB_WORKER_INTERVAL must be positive")
	}
	if c.Queue.MaxRetries < 0 {
		return fmt.Errorf("EMAIL_JOB_MAX_RETRIES must not be negative")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	return nil
}

// Address returns the host:port the server binds to.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
