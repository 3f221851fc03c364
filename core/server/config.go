package server

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReadTimeoutSeconds bounds reading a full request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// WriteTimeoutSeconds bounds writing a response, including object streams.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"300"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"30"`
}

// Validate checks that the port is a usable TCP port number.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %q", c.Port)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ReadTimeout returns the read timeout, zero meaning no limit.
func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds)
}

// WriteTimeout returns the write timeout, zero meaning no limit.
func (c Config) WriteTimeout() time.Duration {
	return seconds(c.WriteTimeoutSeconds)
}

// ShutdownTimeout returns the graceful shutdown timeout, defaulting to 30s.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return seconds(c.ShutdownTimeoutSeconds)
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
