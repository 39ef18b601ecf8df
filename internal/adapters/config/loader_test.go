package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/markitdown-mcp/installer/internal/adapters/config"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFilename), []byte(content), 0o644))
	return dir
}

func TestFileConfigLoader_Load(t *testing.T) {
	dir := writeDefaults(t, `
prefix: /opt/mcp/bin
source: vendor/markitdown
withOcr: true
`)

	defaults, err := config.NewFileConfigLoader().Load(dir)
	require.NoError(t, err)
	require.Equal(t, domain.Defaults{
		Prefix:  "/opt/mcp/bin",
		Source:  "vendor/markitdown",
		WithOCR: true,
	}, defaults)
}

func TestFileConfigLoader_Load_PartialFile(t *testing.T) {
	dir := writeDefaults(t, "withOcr: true\n")

	defaults, err := config.NewFileConfigLoader().Load(dir)
	require.NoError(t, err)
	require.True(t, defaults.WithOCR)
	require.Empty(t, defaults.Prefix)
	require.Empty(t, defaults.Source)
}

func TestFileConfigLoader_Load_MissingFileIsZero(t *testing.T) {
	defaults, err := config.NewFileConfigLoader().Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, domain.Defaults{}, defaults)
}

func TestFileConfigLoader_Load_MalformedFileFails(t *testing.T) {
	dir := writeDefaults(t, "prefix: [unclosed\n")

	_, err := config.NewFileConfigLoader().Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse defaults file")
}
