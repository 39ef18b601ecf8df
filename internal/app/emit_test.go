package app

import (
	"bytes"
	"testing"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/sebdah/goldie/v2"
)

func TestEmitConfig_Linux(t *testing.T) {
	var buf bytes.Buffer
	a := &App{
		platform: domain.Platform{OS: domain.Linux, Home: "/home/user"},
		stdout:   &buf,
	}

	a.emitConfig("/home/user/.local/bin/markitdown-mcp")

	g := goldie.New(t)
	g.Assert(t, "emit_config_linux", buf.Bytes())
}

func TestEmitConfig_UnknownPlatformFallsBack(t *testing.T) {
	var buf bytes.Buffer
	a := &App{
		platform: domain.Platform{OS: "plan9", Home: "/home/user"},
		stdout:   &buf,
	}

	a.emitConfig("/home/user/.local/bin/markitdown-mcp")

	g := goldie.New(t)
	g.Assert(t, "emit_config_fallback", buf.Bytes())
}
