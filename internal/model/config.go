package model

import "time"

// Config holds the complete runtime configuration.
// Hierarchy: CLI flags > NORMATIVA_* env vars > config file > defaults.
type Config struct {
	Audit       AuditConfig       `yaml:"audit" mapstructure:"audit"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Promotion   PromotionConfig   `yaml:"promotion" mapstructure:"promotion"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// AuditConfig controls the audit engine defaults
type AuditConfig struct {
	Mode          string `yaml:"mode" mapstructure:"mode"` // "strict" or "normal"
	EnableAutofix bool   `yaml:"enable_autofix" mapstructure:"enable_autofix"`
}

// StoreConfig selects the telemetry/promotion backend
type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // sqlite, jsonl, memory
	Path   string `yaml:"path" mapstructure:"path"`     // DB file or JSONL file path
}

// PromotionConfig holds the feedback-loop thresholds
type PromotionConfig struct {
	WindowDays        int           `yaml:"window_days" mapstructure:"window_days"`
	MinEvents         int           `yaml:"min_events" mapstructure:"min_events"`
	PresenceThreshold float64       `yaml:"presence_threshold" mapstructure:"presence_threshold"` // Percentage
	SnapshotTTL       time.Duration `yaml:"snapshot_ttl" mapstructure:"snapshot_ttl"`
}

// ServerConfig configures the HTTP surface
type ServerConfig struct {
	Addr              string        `yaml:"addr" mapstructure:"addr"`
	RequestsPerMinute float64       `yaml:"requests_per_minute" mapstructure:"requests_per_minute"`
	Burst             int           `yaml:"burst" mapstructure:"burst"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls rendering behavior
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Audit: AuditConfig{
			Mode:          "strict",
			EnableAutofix: true,
		},
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "data/normativa.db",
		},
		Promotion: PromotionConfig{
			WindowDays:        30,
			MinEvents:         5,
			PresenceThreshold: 80.0,
			SnapshotTTL:       time.Minute,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerMinute: 30,
			Burst:             5,
			ShutdownTimeout:   10 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
