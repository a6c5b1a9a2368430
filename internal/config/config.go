// Package config handles configuration loading for the vacancy service.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the vacancy service.
type Config struct {
	DBHost        string        `yaml:"db_host"`
	DBPort        string        `yaml:"db_port"`
	DBUser        string        `yaml:"db_user"`
	DBPassword    string        `yaml:"db_password"`
	DBName        string        `yaml:"db_name"`
	RedisHost     string        `yaml:"redis_host"`
	RedisPort     string        `yaml:"redis_port"`
	RedisPassword string        `yaml:"redis_password"`
	JWTSecret     string        `yaml:"jwt_secret"`
	JWTExpiry     time.Duration `yaml:"jwt_expiry"`
	VacancyAPIURL string        `yaml:"vacancy_api_url"`
	SwaggerHost   string        `yaml:"swagger_host"`
	Port          string        `yaml:"port"`
	Environment   string        `yaml:"environment"`
}

// Load reads configuration from an optional YAML file named by CONFIG_FILE,
// then applies environment variables on top, then validates required fields.
func Load() (*Config, error) {
	cfg := &Config{
		JWTExpiry:     30 * time.Minute,
		VacancyAPIURL: "https://api.hh.ru",
		Port:          "8080",
		Environment:   "development",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	overrideString(&cfg.DBHost, "DB_HOST")
	overrideString(&cfg.DBPort, "DB_PORT")
	overrideString(&cfg.DBUser, "DB_USER")
	overrideString(&cfg.DBPassword, "DB_PASSWORD")
	overrideString(&cfg.DBName, "DB_NAME")
	overrideString(&cfg.RedisHost, "REDIS_HOST")
	overrideString(&cfg.RedisPort, "REDIS_PORT")
	overrideString(&cfg.RedisPassword, "REDIS_PASSWORD")
	overrideString(&cfg.JWTSecret, "JWT_SECRET")
	overrideString(&cfg.VacancyAPIURL, "VACANCY_API_URL")
	overrideString(&cfg.SwaggerHost, "SWAGGER_HOST")
	overrideString(&cfg.Port, "PORT")
	overrideString(&cfg.Environment, "ENVIRONMENT")
	overrideDuration(&cfg.JWTExpiry, "JWT_EXPIRY")

	for name, value := range map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_PORT":    cfg.DBPort,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"JWT_SECRET": cfg.JWTSecret,
	} {
		if value == "" {
			return nil, fmt.Errorf("required configuration %s is not set", name)
		}
	}

	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}

// RedisAddr returns the host:port pair for the session cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
