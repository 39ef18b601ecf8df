// Package commands implements the CLI commands for the installer.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/markitdown-mcp/installer/internal/app"
	"github.com/markitdown-mcp/installer/internal/build"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for mcpinstall.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. Running the root
// command performs the full install.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "mcpinstall",
		Short: "Build and install the markitdown MCP server",
		Long: "Build and install markitdown-mcp, optionally provisioning the " +
			"Tesseract OCR engine.\n\nEnvironment:\n  INSTALL_DIR   Override the install directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			withOCR, _ := cmd.Flags().GetBool("with-ocr")
			prefix, _ := cmd.Flags().GetString("prefix")
			source, _ := cmd.Flags().GetString("source")
			return a.Run(cmd.Context(), app.RunOptions{
				WithOCR: withOCR,
				Prefix:  prefix,
				Source:  source,
			})
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().Bool("with-ocr", false, "Install Tesseract OCR engine before building")
	rootCmd.Flags().String("prefix", "", fmt.Sprintf("Install binary to DIR (default: %s)", defaultPrefix()))
	rootCmd.Flags().String("source", "", "Build from DIR instead of src/markitdown")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// defaultPrefix is the install directory used when --prefix is not
// given, shown in the flag's help text.
func defaultPrefix() string {
	if dir := os.Getenv("INSTALL_DIR"); dir != "" {
		return dir
	}
	return domain.CurrentPlatform().DefaultInstallDir()
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
