// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package config reads the launcher's runtime settings from environment
// variables. The two feature gates are exact-match switches; the gateway port
// is forwarded verbatim without validation.
package config

import (
	"os"
	"strings"
)

const (
	envAllowWrite         = "MCP_ALLOW_WRITE"
	envAllowSensitiveData = "MCP_ALLOW_SENSITIVE_DATA"
	envGatewayPort        = "SUPERGATEWAY_PORT"
	envLogLevel           = "MCP_LOG_LEVEL"
	defaultLogLevel       = "info"

	// gateOpen is the only value that enables a feature gate. The comparison
	// is exact string equality: "True", "1", and padded variants all leave
	// the gate closed.
	gateOpen = "true"
)

// Config captures runtime settings for the launcher.
type Config struct {
	AllowWrite         bool
	AllowSensitiveData bool
	GatewayPort        string
	LogLevel           string
}

// Load reads configuration from environment variables. SUPERGATEWAY_PORT is
// passed through exactly as found, empty when unset; validating it is the
// gateway's job, not ours. Nothing here can fail.
func Load() Config {
	return Config{
		AllowWrite:         os.Getenv(envAllowWrite) == gateOpen,
		AllowSensitiveData: os.Getenv(envAllowSensitiveData) == gateOpen,
		GatewayPort:        os.Getenv(envGatewayPort),
		LogLevel:           strings.ToLower(getString(envLogLevel, defaultLogLevel)),
	}
}

func getString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
