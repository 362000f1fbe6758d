package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Database DatabaseConfig `envPrefix:"DATABASE_"`
	Catalog  CatalogConfig  `envPrefix:"CATALOG_"`
	Auth     AuthConfig     `envPrefix:"AUTH_"`
	Kafka    KafkaConfig    `envPrefix:"KAFKA_"`
	Email    EmailConfig    `envPrefix:"EMAIL_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:"0.0.0.0:8080"`
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"partshub"`
}

// CatalogConfig points the browse layer at a parts listing endpoint.
// BaseURL may be this service's own address for a self-contained
// deployment, or an upstream catalog aggregator.
type CatalogConfig struct {
	BaseURL      string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	PageLimit    int    `env:"PAGE_LIMIT" envDefault:"100"`
	ItemsPerPage int    `env:"ITEMS_PER_PAGE" envDefault:"9"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

type KafkaConfig struct {
	Enabled bool     `env:"ENABLED" envDefault:"false"`
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"parts-events"`
	GroupID string   `env:"GROUP_ID" envDefault:"catalog-service"`
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromAddress  string `env:"FROM_ADDRESS" envDefault:"noreply@partshub.example"`
	AdminAddress string `env:"ADMIN_ADDRESS" envDefault:"support@partshub.example"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
