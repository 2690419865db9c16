package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	Loyalty   LoyaltyConfig   `yaml:"loyalty"`
	Agency    AgencyConfig    `yaml:"agency"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                string `yaml:"host"`
	Port                int    `yaml:"port"`
	ShutdownTimeoutSecs int    `yaml:"shutdown_timeout_seconds"`
}

// GRPCConfig contains the gRPC health endpoint settings
type GRPCConfig struct {
	Port int `yaml:"port"`
}

// SessionConfig contains rental session settings
type SessionConfig struct {
	Secret     string `yaml:"secret"`
	TTLMinutes int    `yaml:"ttl_minutes"`
	CookieName string `yaml:"cookie_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// LoyaltyConfig contains loyalty program settings
type LoyaltyConfig struct {
	PointsPerDay int `yaml:"points_per_day"`
}

// AgencyConfig contains settings applied to every new session's agency
type AgencyConfig struct {
	SeedSampleData bool `yaml:"seed_sample_data"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SweepExpiredSessions string `yaml:"sweep_expired_sessions"`
	ReportSessionStats   string `yaml:"report_session_stats"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	// A missing .env file is fine; real environment variables still apply
	_ = godotenv.Load()

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse builds a configuration from YAML bytes, applying environment overrides and defaults
func Parse(data []byte) (*Config, error) {
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
	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.GRPC.Port)
	}

	// Session
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Session.Secret = val
	}
	if val := os.Getenv("SESSION_TTL_MINUTES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Session.TTLMinutes)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Loyalty
	if val := os.Getenv("LOYALTY_POINTS_PER_DAY"); val != "" {
		fmt.Sscanf(val, "%d", &c.Loyalty.PointsPerDay)
	}

	// Agency
	if val := os.Getenv("SEED_SAMPLE_DATA"); val != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			c.Agency.SeedSampleData = b
		}
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
	if c.GRPC.Port < 0 || c.GRPC.Port > 65535 {
		return fmt.Errorf("invalid gRPC port: %d", c.GRPC.Port)
	}
	if c.GRPC.Port != 0 && c.GRPC.Port == c.Server.Port {
		return fmt.Errorf("gRPC port must differ from server port: %d", c.GRPC.Port)
	}

	// Session validation
	if c.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Session.Secret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Session.TTLMinutes < 0 {
		return fmt.Errorf("invalid session ttl: %d", c.Session.TTLMinutes)
	}

	// Loyalty validation
	if c.Loyalty.PointsPerDay < 0 {
		return fmt.Errorf("loyalty points per day cannot be negative: %d", c.Loyalty.PointsPerDay)
	}

	// Server defaults
	if c.Server.ShutdownTimeoutSecs == 0 {
		c.Server.ShutdownTimeoutSecs = 10
	}

	// Session defaults
	if c.Session.TTLMinutes == 0 {
		c.Session.TTLMinutes = 30
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "rental_session"
	}

	// Loyalty defaults
	if c.Loyalty.PointsPerDay == 0 {
		c.Loyalty.PointsPerDay = 10
	}

	// Scheduler defaults
	if c.Scheduler.SweepExpiredSessions == "" {
		c.Scheduler.SweepExpiredSessions = "0 */5 * * * *" // Every 5 minutes
	}
	if c.Scheduler.ReportSessionStats == "" {
		c.Scheduler.ReportSessionStats = "0 0 * * * *" // Hourly
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address, or "" when disabled
func (c *Config) GetGRPCAddress() string {
	if c.GRPC.Port == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Server.Host, c.GRPC.Port)
}

// SessionTTL returns the idle lifetime of a rental session
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// ShutdownTimeout returns the graceful shutdown budget of the HTTP server
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSecs) * time.Second
}
