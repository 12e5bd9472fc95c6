package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"talent-site-api/internal/domain"

	"gopkg.in/yaml.v3"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string   `yaml:"server_port"`
	MaxFileSize    int64    `yaml:"max_file_size"`
	LogLevel       string   `yaml:"log_level"`
	LogFormat      string   `yaml:"log_format"`
	SupabaseURL    string   `yaml:"supabase_url"`
	SupabaseKey    string   `yaml:"supabase_key"`
	LeadsTable     string   `yaml:"leads_table"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// defaultConfig holds the values used when neither the config file nor the environment set them.
func defaultConfig() *AppConfig {
	return &AppConfig{
		ServerPort:  "8080",
		MaxFileSize: 50 * 1024 * 1024, // 50MB default
		LogLevel:    "info",
		LogFormat:   "console",
		LeadsTable:  "leads",
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"http://localhost:5173", // Vite dev server
			"http://localhost:4173", // Vite preview
		},
	}
}

// NewConfig builds the configuration from defaults, then the optional YAML file
// named by CONFIG_FILE, then environment variables.
func NewConfig() (domain.Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *AppConfig) applyEnv() {
	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	c.ServerPort = getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", c.ServerPort))
	c.MaxFileSize = getEnvInt64OrDefault("MAX_FILE_SIZE", c.MaxFileSize)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)
	c.SupabaseURL = getEnvOrDefault("SUPABASE_URL", c.SupabaseURL)
	c.SupabaseKey = getEnvOrDefault("SUPABASE_KEY", getEnvOrDefault("SUPABASE_ANON_KEY", c.SupabaseKey))
	c.LeadsTable = getEnvOrDefault("LEADS_TABLE", c.LeadsTable)
	c.AllowedOrigins = getEnvListOrDefault("ALLOWED_ORIGINS", c.AllowedOrigins)
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size in bytes
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns "json" or "console"
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase API key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetLeadsTable returns the table that stores contact and demo requests
func (c *AppConfig) GetLeadsTable() string {
	return c.LeadsTable
}

// GetAllowedOrigins returns the CORS origin allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma separated variable, ignoring blank entries.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
