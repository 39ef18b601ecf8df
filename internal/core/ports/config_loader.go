package ports

import "github.com/markitdown-mcp/installer/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader reads installer defaults from the working directory.
// A missing defaults file yields zero defaults, not an error.
type ConfigLoader interface {
	Load(cwd string) (domain.Defaults, error)
}
