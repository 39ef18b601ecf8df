package logger_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/markitdown-mcp/installer/internal/adapters/logger"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func plainProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestConsole_InfoGoesToStdout(t *testing.T) {
	plainProfile(t)

	var out, errOut bytes.Buffer
	c := logger.NewWithWriters(&out, &errOut)

	c.Info("Building markitdown-mcp...")

	require.Equal(t, "==> Building markitdown-mcp...\n", out.String())
	require.Empty(t, errOut.String())
}

func TestConsole_WarnGoesToStdout(t *testing.T) {
	plainProfile(t)

	var out, errOut bytes.Buffer
	c := logger.NewWithWriters(&out, &errOut)

	c.Warn("Tesseract not found. Image OCR will be unavailable.")

	require.Equal(t, "warn: Tesseract not found. Image OCR will be unavailable.\n", out.String())
	require.Empty(t, errOut.String())
}

func TestConsole_ErrorGoesToStderr(t *testing.T) {
	plainProfile(t)

	var out, errOut bytes.Buffer
	c := logger.NewWithWriters(&out, &errOut)

	c.Error(zerr.New("build failed"))

	require.Empty(t, out.String())
	require.Equal(t, "error: build failed\n", errOut.String())
}
