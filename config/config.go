package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds everything the client needs to reach the backend, the
// weather service and the object-storage bucket.
type Config struct {
	// BaseURL is the backend origin all resource calls are issued against.
	BaseURL     string        `env:"CLOSET_BASE_URL" envDefault:"http://127.0.0.1:8000/"`
	HTTPTimeout time.Duration `env:"CLOSET_HTTP_TIMEOUT" envDefault:"30s"`

	Weather WeatherConfig `envPrefix:"WEATHER_"`
	Storage StorageConfig `envPrefix:"AWS_"`

	// Fallback coordinates used when the caller has no location fix.
	DefaultLatitude  float64 `env:"CLOSET_DEFAULT_LAT" envDefault:"25.0330"`
	DefaultLongitude float64 `env:"CLOSET_DEFAULT_LON" envDefault:"121.5654"`
}

type WeatherConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	APIKey  string `env:"API_KEY"`
	Units   string `env:"UNITS" envDefault:"metric"`
}

type StorageConfig struct {
	Region     string `env:"REGION" envDefault:"ap-northeast-1"`
	BucketName string `env:"BUCKET_NAME" envDefault:"smart-closet-items"`
	KeyPrefix  string `env:"KEY_PREFIX" envDefault:"items"`
}

// LoadConfig reads a .env file if one exists and parses the environment
// into a Config.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
