// internal/common/config/config.go
package config

import (
	"fmt"
	"net"
	"strconv"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Roster  RosterConfig  `mapstructure:"roster"`
	Static  StaticConfig  `mapstructure:"static"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RosterConfig controls how the activity registry is seeded. When Path is
// empty the built-in roster is used.
type RosterConfig struct {
	Path string `mapstructure:"path"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (c *Config) String() string {
	return fmt.Sprintf("%s@%s env=%s addr=%s", c.App.Name, c.App.Version, c.App.Environment, c.Server.Addr())
}
