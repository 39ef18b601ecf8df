package pkgmgr_test

import (
	"testing"

	"github.com/markitdown-mcp/installer/internal/adapters/pkgmgr"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"github.com/markitdown-mcp/installer/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetect_FixedProbeOrder(t *testing.T) {
	tests := []struct {
		name      string
		available map[string]bool
		want      domain.PackageManagerID
	}{
		{
			name:      "brew wins over apt-get",
			available: map[string]bool{"brew": true, "apt-get": true},
			want:      domain.Brew,
		},
		{
			name:      "apt-get wins over dnf and pacman",
			available: map[string]bool{"dnf": true, "apt-get": true, "pacman": true},
			want:      domain.AptGet,
		},
		{
			name:      "choco is probed last",
			available: map[string]bool{"choco": true},
			want:      domain.Choco,
		},
		{
			name:      "nothing available yields the unknown sentinel",
			available: map[string]bool{},
			want:      domain.UnknownManager,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLocator := mocks.NewMockLocator(ctrl)
			mockLocator.EXPECT().Look(gomock.Any()).DoAndReturn(func(name string) (string, bool) {
				if tt.available[name] {
					return "/usr/bin/" + name, true
				}
				return "", false
			}).AnyTimes()

			mgr := pkgmgr.Detect(mockLocator, mocks.NewMockRunner(ctrl))
			require.Equal(t, tt.want, mgr.ID())
		})
	}
}
