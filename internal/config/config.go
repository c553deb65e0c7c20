package config

import (
	"fmt"
	"os"

	"bike-rental-billing/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// An empty host means plans come from the pricing section only.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PricingConfig holds the rate table and group discount tiers.
// Omitted plans or discounts select the standard ones. An explicit empty
// discounts list disables group discounts.
type PricingConfig struct {
	Plans     []domain.PricingPlan  `yaml:"plans"`
	Discounts []domain.DiscountTier `yaml:"discounts"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RefreshRateTable string `yaml:"refresh_rate_table"`
}

// StandardPlans mirrors billing.StandardRates as config records.
var StandardPlans = []domain.PricingPlan{
	{Name: "ByHour", UnitPrice: 5, UnitDurationSeconds: 3600},
	{Name: "ByDay", UnitPrice: 20, UnitDurationSeconds: 86400},
	{Name: "ByWeek", UnitPrice: 60, UnitDurationSeconds: 604800},
}

// StandardDiscounts mirrors billing.StandardDiscounts as config records.
var StandardDiscounts = []domain.DiscountTier{
	{MinSize: 3, MaxSize: 5, Percent: 70},
}

// Default returns a configuration that needs no file. Environment
// overrides still apply and are validated.
func Default() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
	}
	cfg.overrideWithEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Scheduler
	if val := os.Getenv("RATE_REFRESH_SCHEDULE"); val != "" {
		c.Scheduler.RefreshRateTable = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation (optional)
	if c.DatabaseEnabled() {
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}

	// Pricing validation
	for i, p := range c.Pricing.Plans {
		if p.Name == "" {
			return fmt.Errorf("pricing plan %d: name is required", i)
		}
		if p.UnitDurationSeconds <= 0 {
			return fmt.Errorf("pricing plan %q: unit_duration_seconds must be positive", p.Name)
		}
		if p.UnitPrice < 0 {
			return fmt.Errorf("pricing plan %q: unit_price must not be negative", p.Name)
		}
	}

	// Pricing defaults
	if len(c.Pricing.Plans) == 0 {
		c.Pricing.Plans = append([]domain.PricingPlan(nil), StandardPlans...)
	}
	if c.Pricing.Discounts == nil {
		c.Pricing.Discounts = append([]domain.DiscountTier(nil), StandardDiscounts...)
	}

	// Scheduler defaults
	if c.Scheduler.RefreshRateTable == "" {
		c.Scheduler.RefreshRateTable = "0 */15 * * * *" // every 15 minutes
	}

	return nil
}

// DatabaseEnabled reports whether plans should be loaded from PostgreSQL.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Host != ""
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
