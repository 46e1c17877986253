// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"

	"github.com/go-core-stack/mcp-gateway-launcher/pkg/config"
)

const (
	// serverCommand is the fixed base invocation of the EKS MCP server. It is
	// always present and always first in the assembled command string.
	serverCommand = "python -m awslabs.eks_mcp_server.server"

	flagAllowWrite         = "--allow-write"
	flagAllowSensitiveData = "--allow-sensitive-data-access"

	gatewayBinary = "supergateway"
	flagStdio     = "--stdio"
	flagPort      = "--port"
)

// Launcher builds the gateway invocation and replaces the current process
// image with it.
type Launcher struct {
	// cfg keeps the feature gates and the verbatim port value.
	cfg config.Config
	// logger emits structured logs for observability.
	logger zerolog.Logger
	// lookPath resolves the gateway binary on PATH; swapped in tests.
	lookPath func(file string) (string, error)
	// execve performs the process-image replacement; it does not return on
	// success. Swapped in tests.
	execve func(argv0 string, argv []string, envv []string) error
}

// New constructs a Launcher bound to the real exec primitives and the
// provided runtime configuration.
func New(cfg config.Config) *Launcher {
	return &Launcher{
		cfg:      cfg,
		logger:   log.With().Str("component", "launcher").Logger(),
		lookPath: exec.LookPath,
		execve:   unix.Exec,
	}
}

// ServerCommand assembles the MCP server command string: the base invocation
// followed by whichever feature flags the environment enabled, the write flag
// before the sensitive-data flag, each at most once.
func ServerCommand(cfg config.Config) string {
	tokens := []string{serverCommand}
	if cfg.AllowWrite {
		tokens = append(tokens, flagAllowWrite)
	}
	if cfg.AllowSensitiveData {
		tokens = append(tokens, flagAllowSensitiveData)
	}
	return strings.Join(tokens, " ")
}

// GatewayArgv produces the gateway argument vector. The server command rides
// as a single opaque argument for the gateway to interpret; the port value is
// forwarded verbatim, empty when SUPERGATEWAY_PORT was never set.
func GatewayArgv(cfg config.Config) []string {
	return []string{gatewayBinary, flagStdio, ServerCommand(cfg), flagPort, cfg.GatewayPort}
}

// Run resolves the gateway binary on PATH and replaces the current process
// image with it, inheriting the environment and standard streams. On success
// it does not return; any error is reported as-is with no retry or recovery.
func (l *Launcher) Run() error {
	argv := GatewayArgv(l.cfg)

	path, err := l.lookPath(argv[0])
	if err != nil {
		return fmt.Errorf("resolve gateway binary: %w", err)
	}

	l.logger.Info().
		Str("gateway", path).
		Str("server_command", argv[2]).
		Str("port", l.cfg.GatewayPort).
		Msg("handing process over to gateway")

	if err := l.execve(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
