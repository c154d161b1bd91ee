package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GraphQL  GraphQLConfig
}

type ServerConfig struct {
	Port string `validate:"required"`
	Env  string `validate:"oneof=development production"`
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	Database string `validate:"required"`
	Schema   string
	SSLMode  string

	// Pool sizing; acquisition beyond MaxConns waits up to AcquireTimeout
	// seconds before the request fails.
	MaxConns       int `validate:"gte=1"`
	AcquireTimeout int `validate:"gte=1"`
}

type GraphQLConfig struct {
	// Path is the mount point of the GraphQL endpoint
	Path string `validate:"required,startswith=/"`
}

// DSN builds the Postgres connection string for this configuration
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode, c.Schema,
	)
}

// Load reads configuration from a .env file (if present) and the
// process environment. Validation failures are returned so main can
// refuse to start.
func Load() (*Config, error) {
	// godotenv populates the environment before viper reads it, so file
	// values and real environment variables go through the same path
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded: %v", err)
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_ACQUIRE_TIMEOUT", 5)
	viper.SetDefault("GRAPHQL_PATH", "/api")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:           viper.GetString("DB_HOST"),
			Port:           viper.GetString("DB_PORT"),
			User:           viper.GetString("DB_USER"),
			Password:       viper.GetString("DB_PASSWORD"),
			Database:       viper.GetString("DB_DATABASE"),
			Schema:         viper.GetString("DB_SCHEMA"),
			SSLMode:        viper.GetString("DB_SSLMODE"),
			MaxConns:       viper.GetInt("DB_MAX_CONNS"),
			AcquireTimeout: viper.GetInt("DB_ACQUIRE_TIMEOUT"),
		},
		GraphQL: GraphQLConfig{
			Path: viper.GetString("GRAPHQL_PATH"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
