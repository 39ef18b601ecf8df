package gobuild_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/markitdown-mcp/installer/internal/adapters/gobuild"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestBuilder_Build_RunsTidyThenBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	srcDir := filepath.Join("src", "markitdown")
	gomock.InOrder(
		mockRunner.EXPECT().Run(gomock.Any(), domain.CommandSpec{
			Name:  "go",
			Args:  []string{"mod", "tidy", "-e"},
			Dir:   srcDir,
			Check: true,
		}).Return(domain.CommandResult{}, nil),
		mockRunner.EXPECT().Run(gomock.Any(), domain.CommandSpec{
			Name:  "go",
			Args:  []string{"build", "-ldflags=-s -w", "-o=markitdown-mcp", "."},
			Dir:   srcDir,
			Check: true,
		}).Return(domain.CommandResult{}, nil),
	)

	b := gobuild.NewBuilder(mockRunner, mockLogger, domain.Platform{OS: domain.Linux})
	artifact, err := b.Build(context.Background(), srcDir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(srcDir, "markitdown-mcp"), artifact.Path)
}

func TestBuilder_Build_WindowsBinaryName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var buildSpec domain.CommandSpec
	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.CommandSpec) (domain.CommandResult, error) {
			buildSpec = spec
			return domain.CommandResult{}, nil
		}).Times(2)

	b := gobuild.NewBuilder(mockRunner, mockLogger, domain.Platform{OS: domain.Windows})
	artifact, err := b.Build(context.Background(), "src")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("src", "markitdown-mcp.exe"), artifact.Path)
	require.Contains(t, buildSpec.Args, "-o=markitdown-mcp.exe")
}

func TestBuilder_Build_TidyFailureStopsBuild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	// Only the tidy step runs; the compile step must never be reached.
	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
		domain.CommandResult{ExitCode: 1, Stderr: "go: cannot resolve module"},
		zerr.With(domain.ErrCommandFailed, "command", "go"),
	).Times(1)

	b := gobuild.NewBuilder(mockRunner, mockLogger, domain.Platform{OS: domain.Linux})
	_, err := b.Build(context.Background(), "src")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrCommandFailed)
	require.Contains(t, err.Error(), "build failed")
}
