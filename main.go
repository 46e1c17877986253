// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-core-stack/mcp-gateway-launcher/pkg/config"
	"github.com/go-core-stack/mcp-gateway-launcher/pkg/launcher"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("invalid log level")
	}
	log.Logger = log.Level(level)

	log.Info().
		Bool("allow_write", cfg.AllowWrite).
		Bool("allow_sensitive_data", cfg.AllowSensitiveData).
		Str("port", cfg.GatewayPort).
		Msg("starting MCP gateway launcher")

	// Run replaces this process with the gateway; reaching the fatal below
	// means the replacement itself failed.
	if err := launcher.New(cfg).Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to launch gateway")
	}
}
