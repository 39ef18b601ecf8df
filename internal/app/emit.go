package app

import (
	"encoding/json"
	"fmt"

	"github.com/markitdown-mcp/installer/internal/core/domain"
)

const separator = "────────────────────────────────────────────────────"

type serverEntry struct {
	Command string `json:"command"`
}

type clientConfig struct {
	MCPServers map[string]serverEntry `json:"mcpServers"`
}

// emitConfig prints the snippet users paste into their MCP client
// configuration, followed by where that configuration lives.
func (a *App) emitConfig(installedPath string) {
	snippet, err := json.MarshalIndent(clientConfig{
		MCPServers: map[string]serverEntry{
			domain.ServerName: {Command: installedPath},
		},
	}, "", "  ")
	if err != nil {
		a.logger.Warn("could not render client config snippet: " + err.Error())
		return
	}

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, separator)
	fmt.Fprintln(a.stdout, "  Add to your MCP client configuration:")
	fmt.Fprintln(a.stdout, separator)
	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, string(snippet))
	fmt.Fprintln(a.stdout)
	fmt.Fprintf(a.stdout, "Claude Desktop config: %s\n", a.platform.ClientConfigPath())
	fmt.Fprintln(a.stdout, "Claude Code config:    .mcp.json in your project root")
	fmt.Fprintln(a.stdout)
}
