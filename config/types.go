package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Server  ServerConfig  `mapstructure:"server"`
	Form    FormConfig    `mapstructure:"form"`
	Filter  FilterConfig  `mapstructure:"filter"`
	MockAPI MockAPIConfig `mapstructure:"mockapi"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BackendConfig holds the collection endpoint details
type BackendConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ServerConfig holds the web view listener settings
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// FormConfig controls form behavior around failed saves
type FormConfig struct {
	// PreserveOnFailure keeps the form content when create or update fails
	PreserveOnFailure bool `mapstructure:"preserve_on_failure"`
}

// FilterConfig contains filter settings
type FilterConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

// MockAPIConfig holds the local mock collection listener settings
type MockAPIConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
