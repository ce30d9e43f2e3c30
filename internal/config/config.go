package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Stripe   StripeConfig   `yaml:"stripe"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	Type     string         `yaml:"type"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MySQLConfig contains MySQL connection settings.
type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// PostgresConfig contains PostgreSQL connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// AuthConfig contains token settings. The secret is only ever read from
// the environment, never from the file.
type AuthConfig struct {
	Secret string `yaml:"-"`
}

// StripeConfig contains payment provider settings. Same rule as the
// token secret.
type StripeConfig struct {
	SecretKey string `yaml:"-"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8000",
			CORSOrigins: []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Type: "postgres",
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "metrohomes_user",
				Password: "metrohomes_pass",
				Database: "metrohomes_db",
				SSLMode:  "disable",
			},
			MySQL: MySQLConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "metrohomes_user",
				Password: "metrohomes_pass",
				Database: "metrohomes_db",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file, falling back to
// defaults when the file is absent, then applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Database.Type = getEnv("DB_TYPE", c.Database.Type)
	c.Auth.Secret = os.Getenv("ACCESS_SECRET_KEY")
	c.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")

	if host := os.Getenv("DB_HOST"); host != "" {
		c.Database.MySQL.Host = host
		c.Database.Postgres.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		c.Database.MySQL.User = user
		c.Database.Postgres.User = user
	}
	if pass := os.Getenv("DB_PASSWORD"); pass != "" {
		c.Database.MySQL.Password = pass
		c.Database.Postgres.Password = pass
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		c.Database.MySQL.Database = name
		c.Database.Postgres.Database = name
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
