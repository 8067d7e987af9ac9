// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HarshaNaik703/Shibu-Robo/assets"
	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/pkg/filesystem"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// FileLoader loads YAML configuration from ~/.shibu/config.yaml
// (overridable via SHIBU_CONFIG). The default file is written on first run.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(path, assets.DefaultConfigYAML, 0o600); err != nil {
				return domain.Config{}, err
			}
			data = assets.DefaultConfigYAML
		} else {
			return domain.Config{}, err
		}
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// Path resolves the active config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("SHIBU_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHome(), ".shibu", "config.yaml")
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.Registry.Dir == "" {
		cfg.Registry.Dir = filepath.Join(filesystem.UserHome(), ".shibu", "commands")
	} else {
		cfg.Registry.Dir = filesystem.ExpandPath(cfg.Registry.Dir)
	}
	if cfg.Registry.PythonInterpreter == "" {
		cfg.Registry.PythonInterpreter = "python3"
	}
	if cfg.Registry.ShellInterpreter == "" {
		cfg.Registry.ShellInterpreter = "/bin/sh"
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = 32
	}
	if cfg.Model.TimeoutSeconds == 0 {
		cfg.Model.TimeoutSeconds = 20
	}
	if cfg.Advisory.APIKeyEnvVar == "" {
		cfg.Advisory.APIKeyEnvVar = "GEMINI_API_KEY"
	}
	if cfg.Advisory.TimeoutSeconds == 0 {
		cfg.Advisory.TimeoutSeconds = 30
	}
	if cfg.Narration.SpeechProgram == "" {
		cfg.Narration.SpeechProgram = "espeak"
	}
	if cfg.Narration.QueueSize == 0 {
		cfg.Narration.QueueSize = 8
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
