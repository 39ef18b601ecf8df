package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ServerBinary is the base name of the binary produced and installed.
const ServerBinary = "markitdown-mcp"

// ServerName is the key under which MCP clients register the server.
const ServerName = "markitdown"

// Platform describes the host for all platform-conditional behavior:
// binary suffix, default install prefix, PATH remediation and client
// config locations. It is resolved once at startup; components receive
// it instead of re-dispatching on runtime.GOOS.
type Platform struct {
	OS      string
	Home    string
	AppData string
}

var currentPlatform = sync.OnceValue(func() Platform {
	home, _ := os.UserHomeDir()
	return Platform{
		OS:      runtime.GOOS,
		Home:    home,
		AppData: os.Getenv("APPDATA"),
	}
})

// CurrentPlatform returns the host platform, detected once per process.
func CurrentPlatform() Platform {
	return currentPlatform()
}

// IsWindows reports whether the host is in the Windows family.
func (p Platform) IsWindows() bool {
	return p.OS == Windows
}

// BinaryName appends the platform binary suffix to base.
func (p Platform) BinaryName(base string) string {
	if p.IsWindows() {
		return base + ".exe"
	}
	return base
}

// DefaultInstallDir is the platform-conventional user-local binary
// directory, used when neither --prefix nor INSTALL_DIR is given.
func (p Platform) DefaultInstallDir() string {
	return filepath.Join(p.Home, ".local", "bin")
}

// ClientConfigPath returns the expected location of the Claude Desktop
// configuration file, or a generic hint on unrecognized platforms.
func (p Platform) ClientConfigPath() string {
	switch p.OS {
	case Darwin:
		return filepath.Join(p.Home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case Linux:
		return filepath.Join(p.Home, ".config", "Claude", "claude_desktop_config.json")
	case Windows:
		appData := p.AppData
		if appData == "" {
			appData = filepath.Join(p.Home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json")
	default:
		return "your MCP client config file"
	}
}

// PathRemediation returns the platform-appropriate instruction for adding
// dir to the search path.
func (p Platform) PathRemediation(dir string) string {
	if p.IsWindows() {
		return fmt.Sprintf(`Add it via: setx PATH "%%PATH%%;%s"`, dir)
	}
	return fmt.Sprintf(`Add this to your shell profile: export PATH="%s:$PATH"`, dir)
}
