package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Debug          bool          `mapstructure:"debug"`
	Timeout        time.Duration `mapstructure:"timeout"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	Filters        FilterConfig  `mapstructure:"filters"`
	Logging        LoggingConfig `mapstructure:"logging"`
	Webhook        WebhookConfig `mapstructure:"webhook"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// FilterConfig maps filter names to expressions usable with --filter
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// WebhookConfig holds the settings of the webhook receiver
type WebhookConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `mapstructure:"addr"`
	// Key is the webhook authentication key shown in the Mandrill UI.
	// Signature checks are skipped when it is empty.
	Key string `mapstructure:"key"`
	// URL is the exact URL registered with Mandrill, used for signing.
	URL string `mapstructure:"url"`
	// Path is the route the receiver serves.
	Path string `mapstructure:"path"`
}
