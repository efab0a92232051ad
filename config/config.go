package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Sorter    SorterConfig
	Results   ResultsConfig
	Archive   ArchiveConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadMB    int      `mapstructure:"max_upload_mb"`
}

// SorterConfig holds the pattern tables for page classification. Empty
// tables fall back to the built-in defaults.
type SorterConfig struct {
	CourierPriority    []string           `mapstructure:"courier_priority"`
	SizeOrder          []string           `mapstructure:"size_order"`
	StyleGroups        []StyleGroupConfig `mapstructure:"style_groups"`
	EnableDebugLogging bool               `mapstructure:"enable_debug_logging"`
}

// StyleGroupConfig maps a list of keywords to one canonical style name.
// Groups are matched in config order; earlier groups shadow later ones.
type StyleGroupConfig struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// ResultsConfig holds the in-memory result cache settings
type ResultsConfig struct {
	TTL     time.Duration `mapstructure:"ttl"`
	MaxRuns int           `mapstructure:"max_runs"`
}

// ArchiveConfig holds the optional S3/MinIO archive settings
type ArchiveConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelsort/")

	// Environment variable settings
	v.SetEnvPrefix("LABELSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_upload_mb", 64)

	// Sorter defaults: empty tables here mean the registry's built-in
	// courier/size/style defaults apply.
	v.SetDefault("sorter.courier_priority", []string{})
	v.SetDefault("sorter.size_order", []string{})
	v.SetDefault("sorter.enable_debug_logging", false)

	// Result cache defaults
	v.SetDefault("results.ttl", "30m")
	v.SetDefault("results.max_runs", 100)

	// Archive defaults
	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.use_ssl", true)
	v.SetDefault("archive.prefix", "sorted-labels")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Archive.Enabled {
		if config.Archive.Endpoint == "" {
			return fmt.Errorf("archive endpoint is required when archive is enabled (set LABELSORT_ARCHIVE_ENDPOINT)")
		}
		if config.Archive.Bucket == "" {
			return fmt.Errorf("archive bucket is required when archive is enabled (set LABELSORT_ARCHIVE_BUCKET)")
		}
	}

	if config.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive, got: %d", config.Server.MaxUploadMB)
	}

	if config.Results.MaxRuns <= 0 {
		return fmt.Errorf("results max_runs must be positive, got: %d", config.Results.MaxRuns)
	}

	for i, group := range config.Sorter.StyleGroups {
		if group.Name == "" {
			return fmt.Errorf("style group %d has no name", i)
		}
		if len(group.Keywords) == 0 {
			return fmt.Errorf("style group %q has no keywords", group.Name)
		}
	}

	return nil
}
