package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port            string   `env:"PORT" envDefault:"8080"`
	DatabaseURL     string   `env:"FIREBASE_DATABASE_URL,required,notEmpty"`
	CredentialsJSON string   `env:"FIREBASE_CREDENTIALS,required,notEmpty"`
	DirectoryAdmin  string   `env:"DIRECTORY_ADMIN_EMAIL"`
	AllowedOrigins  []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// ServiceAccountJSON returns the credential bytes with the private key's
// escaped newlines rectified, since shells and secret managers tend to
// flatten the PEM block into a single \n-escaped line.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(c.CredentialsJSON), &parsed); err != nil {
		return nil, fmt.Errorf("error unmarshalling key data: %w", err)
	}
	if key, ok := parsed["private_key"].(string); ok {
		parsed["private_key"] = strings.ReplaceAll(key, "\\n", "\n")
	}
	rectified, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("error marshalling key data: %w", err)
	}
	return rectified, nil
}
