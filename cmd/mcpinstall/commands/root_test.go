package commands_test

import (
	"context"
	"testing"

	"github.com/markitdown-mcp/installer/cmd/mcpinstall/commands"
	"github.com/markitdown-mcp/installer/internal/app"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	loader      *mocks.MockConfigLoader
	gate        *mocks.MockToolchainGate
	provisioner *mocks.MockProvisioner
	builder     *mocks.MockBuilder

	cli *commands.CLI
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &cliFixture{
		loader:      mocks.NewMockConfigLoader(ctrl),
		gate:        mocks.NewMockToolchainGate(ctrl),
		provisioner: mocks.NewMockProvisioner(ctrl),
		builder:     mocks.NewMockBuilder(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(logger, f.loader, f.gate, f.provisioner, f.builder,
		mocks.NewMockInstaller(ctrl), mocks.NewMockDiagnostics(ctrl),
		mocks.NewMockManifestStore(ctrl), domain.Platform{OS: domain.Linux, Home: "/home/user"})
	f.cli = commands.New(a)
	return f
}

func TestRootCommand_RunsInstall(t *testing.T) {
	f := newCLIFixture(t)

	f.loader.EXPECT().Load(".").Return(domain.Defaults{}, nil)
	f.gate.EXPECT().Check(gomock.Any()).Return(domain.ToolVersion{},
		zerr.Wrap(domain.ErrToolchainNotFound, "Go is not installed"))

	f.cli.SetArgs([]string{})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrToolchainNotFound)
}

func TestRootCommand_WithOCRFlagReachesProvisioner(t *testing.T) {
	f := newCLIFixture(t)

	f.loader.EXPECT().Load(".").Return(domain.Defaults{}, nil)
	f.gate.EXPECT().Check(gomock.Any()).Return(domain.ToolVersion{Raw: "go1.24.0"}, nil)
	f.provisioner.EXPECT().Ensure(gomock.Any(), true).Return(
		zerr.Wrap(domain.ErrCommandFailed, domain.ErrProvisionFailed.Error()))

	f.cli.SetArgs([]string{"--with-ocr"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestRootCommand_SourceFlagReachesBuilder(t *testing.T) {
	f := newCLIFixture(t)

	f.loader.EXPECT().Load(".").Return(domain.Defaults{}, nil)
	f.gate.EXPECT().Check(gomock.Any()).Return(domain.ToolVersion{Raw: "go1.24.0"}, nil)
	f.provisioner.EXPECT().Ensure(gomock.Any(), false).Return(nil)
	f.builder.EXPECT().Build(gomock.Any(), "vendor/markitdown").Return(
		domain.BuildArtifact{}, zerr.Wrap(domain.ErrCommandFailed, domain.ErrBuildFailed.Error()))

	f.cli.SetArgs([]string{"--source", "vendor/markitdown"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestVersionCommand(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestRootCommand_UnknownFlagFails(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"--bogus"})
	require.Error(t, f.cli.Execute(context.Background()))
}
