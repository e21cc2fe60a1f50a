package internal

import "time"

type Config struct {
	Host            string        `env:"HOST,required=true"`
	Port            int           `env:"PORT,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath   string        `env:"BLUGE_FILEPATH,required=true"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,required=true"`
	MaxUploadBytes  int64         `env:"MAX_UPLOAD_BYTES"`
	ListLimit       int           `env:"LIST_LIMIT"`
	SearchLimit     int           `env:"SEARCH_LIMIT"`
}

// Defaults for the optional knobs. The upload ceiling mirrors the portal's
// documented 10 MiB limit.
const (
	DefaultMaxUploadBytes = 10 * 1024 * 1024
	DefaultListLimit      = 10
	DefaultSearchLimit    = 20
)

// Normalize fills the optional fields left at their zero value.
func (c *Config) Normalize() {
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.ListLimit <= 0 {
		c.ListLimit = DefaultListLimit
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = DefaultSearchLimit
	}
}
