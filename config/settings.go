// Package config provides configuration structures for the association service and the launcher.
// It defines matcher settings, server transport settings and launcher defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Extension strategies understood by the tokenizer.
const (
	ExtensionFixedWidth = "fixed_width"
	ExtensionLastDot    = "last_dot"
)

// DefaultStopwords are the filler words excluded from matching on both passes.
var DefaultStopwords = []string{"the", "and", "but", "for", "are"}

// MatcherSettings contains the options that shape a matching run.
// They are read-only while a request is being processed.
type MatcherSettings struct {
	Stopwords         []string `json:"stopwords" toml:"stopwords"`                   // Words never matched (case-insensitive)
	MinTokenLength    int      `json:"min_token_length" toml:"min_token_length"`     // Shortest token that takes part in matching (e.g., 3)
	ExtensionStrategy string   `json:"extension_strategy" toml:"extension_strategy"` // "fixed_width" (dot four from the end) or "last_dot"
	Seed              int64    `json:"seed" toml:"seed"`                             // Tie-break seed; 0 seeds from the clock
}

// ServerSettings contains the transport options of the association service.
type ServerSettings struct {
	Port            string        `json:"port" toml:"port"`
	ReadTimeout     time.Duration `json:"read_timeout" toml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" toml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" toml:"shutdown_timeout"`
	MaxRequestBytes int64         `json:"max_request_bytes" toml:"max_request_bytes"`
	RateLimit       float64       `json:"rate_limit" toml:"rate_limit"` // Requests per second; 0 disables limiting
	RateBurst       int           `json:"rate_burst" toml:"rate_burst"`
	LogFile         string        `json:"log_file" toml:"log_file"`               // Optional rotating log file; stderr only when empty
	LogMaxSizeMB    int           `json:"log_max_size_mb" toml:"log_max_size_mb"` // Rotation threshold for LogFile
}

// LauncherSettings contains the caller-side options of the launcher.
type LauncherSettings struct {
	ServerURL   string        `json:"server_url" toml:"server_url"`
	LaunchDir   string        `json:"launch_dir" toml:"launch_dir"`
	DefaultFile string        `json:"default_file" toml:"default_file"` // Used on timeout or when the service answers with the default choice
	Timeout     time.Duration `json:"timeout" toml:"timeout"`
	Exclude     []string      `json:"exclude" toml:"exclude"` // Glob patterns of launch directory entries that are never candidates
}

// Config is the complete file-backed configuration.
type Config struct {
	Matcher  MatcherSettings  `json:"matcher" toml:"matcher"`
	Server   ServerSettings   `json:"server" toml:"server"`
	Launcher LauncherSettings `json:"launcher" toml:"launcher"`
}

// Default values applied by ApplyDefaults.
const (
	DefaultMinTokenLength  = 3
	DefaultPort            = "5555"
	DefaultTimeout         = 500 * time.Millisecond
	DefaultShutdownTimeout = 5 * time.Second
	DefaultMaxRequestBytes = 1 << 20
	DefaultLogMaxSizeMB    = 10
	DefaultServerURL       = "http://localhost:5555"
	DefaultLaunchDir       = "Launch-Files"
	DefaultFile            = "default.png"
)

// ApplyDefaults applies default values to the matcher settings
func (s *MatcherSettings) ApplyDefaults() {
	if s.Stopwords == nil {
		s.Stopwords = append([]string(nil), DefaultStopwords...)
	}
	if s.MinTokenLength == 0 {
		s.MinTokenLength = DefaultMinTokenLength
	}
	if s.ExtensionStrategy == "" {
		s.ExtensionStrategy = ExtensionFixedWidth
	}
}

// Validate returns one message per problem found in the matcher settings.
func (s *MatcherSettings) Validate() []string {
	var errors []string

	if s.MinTokenLength < 1 {
		errors = append(errors, fmt.Sprintf("min_token_length must be at least 1, got %d", s.MinTokenLength))
	}
	if s.ExtensionStrategy != ExtensionFixedWidth && s.ExtensionStrategy != ExtensionLastDot {
		errors = append(errors, "Invalid extension_strategy '"+s.ExtensionStrategy+"' (must be 'fixed_width' or 'last_dot')")
	}
	for _, word := range s.Stopwords {
		if strings.TrimSpace(word) == "" {
			errors = append(errors, "Stopwords cannot be empty or whitespace-only")
			break
		}
	}

	return errors
}

// ApplyDefaults applies default values to the server settings
func (s *ServerSettings) ApplyDefaults() {
	if s.Port == "" {
		s.Port = DefaultPort
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = DefaultTimeout
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = DefaultTimeout
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = DefaultShutdownTimeout
	}
	if s.MaxRequestBytes == 0 {
		s.MaxRequestBytes = DefaultMaxRequestBytes
	}
	if s.LogFile != "" && s.LogMaxSizeMB == 0 {
		s.LogMaxSizeMB = DefaultLogMaxSizeMB
	}
	if s.RateLimit > 0 && s.RateBurst == 0 {
		s.RateBurst = int(s.RateLimit)
		if s.RateBurst < 1 {
			s.RateBurst = 1
		}
	}
}

// Validate returns one message per problem found in the server settings.
func (s *ServerSettings) Validate() []string {
	var errors []string

	if strings.TrimSpace(s.Port) == "" {
		errors = append(errors, "port is required")
	}
	if s.ReadTimeout < 0 || s.WriteTimeout < 0 {
		errors = append(errors, "timeouts cannot be negative")
	}
	if s.MaxRequestBytes < 0 {
		errors = append(errors, "max_request_bytes cannot be negative")
	}
	if s.RateLimit < 0 {
		errors = append(errors, "rate_limit cannot be negative")
	}
	if s.LogMaxSizeMB < 0 {
		errors = append(errors, "log_max_size_mb cannot be negative")
	}

	return errors
}

// ApplyDefaults applies default values to the launcher settings
func (s *LauncherSettings) ApplyDefaults() {
	if s.ServerURL == "" {
		s.ServerURL = DefaultServerURL
	}
	if s.LaunchDir == "" {
		s.LaunchDir = DefaultLaunchDir
	}
	if s.DefaultFile == "" {
		s.DefaultFile = DefaultFile
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}
}

// Validate returns one message per problem found in the launcher settings.
func (s *LauncherSettings) Validate() []string {
	var errors []string

	if s.Timeout < 0 {
		errors = append(errors, "launcher timeout cannot be negative")
	}
	for _, pattern := range s.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errors = append(errors, "Invalid exclude pattern '"+pattern+"'")
		}
	}

	return errors
}

// ApplyDefaults applies default values to every section
func (c *Config) ApplyDefaults() {
	c.Matcher.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Launcher.ApplyDefaults()
}

// Validate collects the problems of every section
func (c *Config) Validate() []string {
	var errors []string
	errors = append(errors, c.Matcher.Validate()...)
	errors = append(errors, c.Server.Validate()...)
	errors = append(errors, c.Launcher.Validate()...)
	return errors
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}
