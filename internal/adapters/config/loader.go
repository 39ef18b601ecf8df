// Package config loads optional installer defaults from a YAML file in
// the working directory. Flags and environment variables take precedence
// over anything loaded here.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/markitdown-mcp/installer/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the defaults file looked up in the working directory.
const DefaultFilename = ".mcpinstall.yaml"

// FileConfigLoader reads installer defaults from a YAML file. It
// implements ports.ConfigLoader.
type FileConfigLoader struct {
	Filename string
}

// NewFileConfigLoader creates a loader for the standard defaults file.
func NewFileConfigLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename}
}

type defaultsFile struct {
	Prefix  string `yaml:"prefix"`
	Source  string `yaml:"source"`
	WithOCR bool   `yaml:"withOcr"`
}

// Load reads the defaults file from cwd. A missing file yields zero
// defaults; a malformed file is an error.
func (l *FileConfigLoader) Load(cwd string) (domain.Defaults, error) {
	path := filepath.Join(cwd, l.Filename)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Defaults{}, nil
	}
	if err != nil {
		return domain.Defaults{}, zerr.Wrap(zerr.With(err, "path", path), "failed to read defaults file")
	}

	var file defaultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Defaults{}, zerr.Wrap(zerr.With(err, "path", path), "failed to parse defaults file")
	}

	return domain.Defaults{
		Prefix:  file.Prefix,
		Source:  file.Source,
		WithOCR: file.WithOCR,
	}, nil
}
