package ports

import "github.com/markitdown-mcp/installer/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ManifestStore records installed binaries in the install manifest.
type ManifestStore interface {
	// Record writes rec into the manifest of its install directory,
	// replacing any previous entry for the same binary.
	Record(rec domain.InstallRecord) error

	// Get retrieves the recorded entry for binary in dir, or nil when the
	// manifest has no such entry.
	Get(dir, binary string) (*domain.InstallRecord, error)
}
