package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/readmedoctor/readme-doctor/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file written by `readme-doctor init`.
	FileName = ".readme-doctor.yaml"
	// LegacyFileName is the JSON config of earlier releases. JSON is valid
	// YAML, so the same decoder reads both.
	LegacyFileName = "readme-doctor.config.json"
)

// YAMLLoader implements domain.ConfigLoader by reading .readme-doctor.yaml,
// falling back to readme-doctor.config.json.
type YAMLLoader struct {
	explicit string
}

// New creates a YAMLLoader that looks for the config in the project directory.
func New() *YAMLLoader { return &YAMLLoader{} }

// NewWithFile creates a YAMLLoader that reads exactly file. A missing file is
// an error.
func NewWithFile(file string) *YAMLLoader { return &YAMLLoader{explicit: file} }

// Load resolves the effective config for projectPath.
// Returns DefaultConfig if no config file exists.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	path, data, err := l.read(projectPath)
	if err != nil {
		return domain.Config{}, err
	}
	if data == nil {
		return domain.DefaultConfig(), nil
	}

	var overrides domain.ConfigOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	cfg := domain.DefaultConfig().Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg, nil
}

// read returns the config path and bytes, or nil data when no file exists.
func (l *YAMLLoader) read(projectPath string) (string, []byte, error) {
	if l.explicit != "" {
		data, err := os.ReadFile(l.explicit)
		if err != nil {
			return l.explicit, nil, fmt.Errorf("reading config: %w", err)
		}
		return l.explicit, data, nil
	}

	for _, name := range []string{FileName, LegacyFileName} {
		path := filepath.Join(projectPath, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return path, nil, fmt.Errorf("reading config: %w", err)
		}
		return path, data, nil
	}
	return "", nil, nil
}
