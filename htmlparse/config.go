// CLAUDE:SUMMARY Configuration struct, defaults, and YAML loader for the parse driver.
package htmlparse

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/andrewguertin/servo/loader"
)

// Config configures a Parser.
type Config struct {
	// UserAgent is sent on every resource request (default: Servo UA).
	UserAgent string `yaml:"user_agent"`

	// MaxBodySize caps bytes read per resource (default: 10 MB).
	MaxBodySize int64 `yaml:"max_body_size"`

	// Timeout bounds each individual resource load (default: 30s).
	Timeout time.Duration `yaml:"timeout"`

	// Loader overrides the resource loader. Defaults to an HTTP loader
	// built from the settings above.
	Loader loader.Loader `yaml:"-"`

	// Logger for debug/error messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (compatible; Servo/1.0)"
	}
	if c.MaxBodySize <= 0 {
		c.MaxBodySize = 10 << 20
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Loader == nil {
		c.Loader = loader.NewHTTP(
			loader.WithUserAgent(c.UserAgent),
			loader.WithMaxBodySize(c.MaxBodySize),
			loader.WithClient(&http.Client{Timeout: c.Timeout}),
			loader.WithLogger(c.Logger),
		)
	}
}

// LoadConfigFile reads a YAML config file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
