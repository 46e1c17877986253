// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

// Package launcher assembles the MCP server command line from the loaded
// configuration and hands the process over to the supergateway binary, which
// bridges the server's stdio transport to a network port. The hand-over is a
// process-image replacement: the gateway inherits the launcher's PID,
// environment, and standard streams, and the launcher never regains control.
package launcher
