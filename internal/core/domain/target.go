package domain

import (
	"path/filepath"
	"time"
)

// InstallTarget names the directory and file the built binary is copied
// to. It is constructed from configuration before any side effect occurs.
type InstallTarget struct {
	Dir     string
	BinName string
}

// InstalledPath is the final path of the binary inside the target.
func (t InstallTarget) InstalledPath() string {
	return filepath.Join(t.Dir, t.BinName)
}

// BuildArtifact points at the binary produced by the builder. It is
// read-only after creation.
type BuildArtifact struct {
	Path string
}

// InstallRecord is one entry of the install manifest kept next to the
// installed binary.
type InstallRecord struct {
	Binary      string    `json:"binary"`
	Path        string    `json:"path"`
	GoVersion   string    `json:"go_version,omitempty"`
	Checksum    string    `json:"checksum,omitempty"`
	InstalledAt time.Time `json:"installed_at"`
}

// Defaults are installer settings loaded from the optional defaults file.
// Zero values mean "not configured".
type Defaults struct {
	Prefix  string
	Source  string
	WithOCR bool
}
