package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters. It is the credential
// resolver boundary: store connection parameters and token-signing
// parameters are sourced here and treated as opaque by the core.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains store connection parameters. Kind selects the backend;
// the postgres fields and the sqlite fields are validated by the store for
// the selected kind only.
type Database struct {
	Kind     string `env:"KIND" envDefault:"sqlite"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	DBName   string `env:"DBNAME"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
	Path     string `env:"PATH"`
	Memory   bool   `env:"MEMORY" envDefault:"true"`

	MaxIdleConns       int  `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns       int  `env:"MAX_OPEN_CONNS" envDefault:"100"`
	ConnMaxLifetimeMin int  `env:"CONN_MAX_LIFETIME" envDefault:"60"`
	Populate           bool `env:"POPULATE" envDefault:"false"`
}

// JWT contains token-signing parameters.
type JWT struct {
	Secret        string `env:"SECRET" envDefault:"devsecret"`
	Algorithm     string `env:"ALGORITHM" envDefault:"HS256"`
	ExpiryMinutes int    `env:"EXPIRY_MINUTES" envDefault:"30"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
