package manifest_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markitdown-mcp/installer/internal/adapters/manifest"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func installBinary(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func TestStore_RecordThenGet(t *testing.T) {
	dir := t.TempDir()
	path := installBinary(t, dir, "markitdown-mcp", "binary")

	s := manifest.NewStore()
	require.NoError(t, s.Record(domain.InstallRecord{
		Binary:      "markitdown-mcp",
		Path:        path,
		GoVersion:   "go1.24.0",
		InstalledAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
	}))

	rec, err := s.Get(dir, "markitdown-mcp")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, path, rec.Path)
	require.Equal(t, "go1.24.0", rec.GoVersion)
	require.Len(t, rec.Checksum, 16)
}

func TestStore_GetMissingEntryIsNil(t *testing.T) {
	s := manifest.NewStore()

	rec, err := s.Get(t.TempDir(), "markitdown-mcp")
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestStore_RecordReplacesPreviousEntry(t *testing.T) {
	dir := t.TempDir()
	path := installBinary(t, dir, "markitdown-mcp", "binary-v1")

	s := manifest.NewStore()
	first := domain.InstallRecord{
		Binary:      "markitdown-mcp",
		Path:        path,
		GoVersion:   "go1.24.0",
		InstalledAt: time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(first))

	require.NoError(t, os.WriteFile(path, []byte("binary-v2"), 0o755))
	second := first
	second.GoVersion = "go1.25.1"
	second.InstalledAt = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.Record(second))

	rec, err := s.Get(dir, "markitdown-mcp")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "go1.25.1", rec.GoVersion)
	require.True(t, rec.InstalledAt.Equal(second.InstalledAt))
}

func TestStore_ChecksumChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := installBinary(t, dir, "markitdown-mcp", "binary-v1")

	s := manifest.NewStore()
	require.NoError(t, s.Record(domain.InstallRecord{Binary: "markitdown-mcp", Path: path, InstalledAt: time.Now()}))
	before, err := s.Get(dir, "markitdown-mcp")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("binary-v2"), 0o755))
	require.NoError(t, s.Record(domain.InstallRecord{Binary: "markitdown-mcp", Path: path, InstalledAt: time.Now()}))
	after, err := s.Get(dir, "markitdown-mcp")
	require.NoError(t, err)

	require.NotEqual(t, before.Checksum, after.Checksum)
}

func TestStore_ManifestIsKeyedJSON(t *testing.T) {
	dir := t.TempDir()
	path := installBinary(t, dir, "markitdown-mcp", "binary")

	s := manifest.NewStore()
	require.NoError(t, s.Record(domain.InstallRecord{Binary: "markitdown-mcp", Path: path, InstalledAt: time.Now()}))

	data, err := os.ReadFile(filepath.Join(dir, ".mcpinstall.json"))
	require.NoError(t, err)

	entries := map[string]domain.InstallRecord{}
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Contains(t, entries, "markitdown-mcp")
}

func TestStore_RecordMissingBinaryFails(t *testing.T) {
	s := manifest.NewStore()

	err := s.Record(domain.InstallRecord{
		Binary:      "markitdown-mcp",
		Path:        filepath.Join(t.TempDir(), "does-not-exist"),
		InstalledAt: time.Now(),
	})
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
