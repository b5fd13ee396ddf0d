package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-persistence-bun"
)

// BaseConfig holds all configuration for the registry shell.
type BaseConfig struct {
	Persistence PersistenceConfig `json:"persistence"`
	Output      OutputConfig      `json:"output"`
}

// PersistenceConfig implements persistence.Config interface
type PersistenceConfig struct {
	Debug          bool          `json:"debug" env:"DB_DEBUG" default:"false"`
	Driver         string        `json:"driver" default:"sqlite"`
	Server         string        `json:"server" env:"DB_SERVER" default:"file:immunization_registry.db"`
	PingTimeout    time.Duration `json:"ping_timeout" default:"5s"`
	OtelIdentifier string        `json:"otel_identifier" default:"go-immunization"`
}

func (c PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c PersistenceConfig) GetDriver() string             { return c.Driver }
func (c PersistenceConfig) GetServer() string             { return c.Server }
func (c PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c PersistenceConfig) GetOtelIdentifier() string     { return c.OtelIdentifier }

// OutputConfig controls how command results are rendered.
type OutputConfig struct {
	Format string `json:"format" env:"IMMUNIZATION_FORMAT" default:"text"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *BaseConfig {
	return &BaseConfig{
		Persistence: PersistenceConfig{
			Driver:         "sqlite",
			Server:         "file:immunization_registry.db",
			PingTimeout:    5 * time.Second,
			OtelIdentifier: "go-immunization",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// GetPersistence returns persistence config
func (c *BaseConfig) GetPersistence() persistence.Config {
	return c.Persistence
}

// GetOutput returns output config
func (c *BaseConfig) GetOutput() OutputConfig {
	return c.Output
}

// Validate implements config.Validable interface
func (c *BaseConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Output.Format)) {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("config: unsupported output format %q", c.Output.Format)
	}
	if driver := strings.TrimSpace(c.Persistence.Driver); driver != "" && driver != "sqlite" {
		return fmt.Errorf("config: unsupported persistence driver %q", driver)
	}
	return nil
}
