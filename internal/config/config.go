package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Supported storage backends.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	StaticDir              string `mapstructure:"static_dir"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig describes where the document store lives. Hostname, Port
// and Name are assembled into a connection URL unless URL is set.
type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"     validate:"required,oneof=mongo postgres"`
	Hostname   string `mapstructure:"hostname"   validate:"required"`
	Port       int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	Name       string `mapstructure:"name"       validate:"required"`
	Collection string `mapstructure:"collection" validate:"required"`
	URL        string `mapstructure:"url"        validate:"omitempty,url"`
}

// ConnectionURL returns the URL used to reach the configured store.
func (c DatabaseConfig) ConnectionURL() string {
	if c.URL != "" {
		return c.URL
	}

	host := net.JoinHostPort(c.Hostname, strconv.Itoa(c.Port))
	switch c.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			Host:     host,
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	default:
		return fmt.Sprintf("mongodb://%s/%s", host, c.Name)
	}
}
