package config

import (
	"os"
	"path/filepath"
)

// FileName is the config file looked up in the working directory.
const FileName = "shapeboard.yaml"

// Loader finds and reads the configuration file.
type Loader struct {
	OverridePath string
}

// NewLoader creates a new Loader. An empty overridePath means search.
func NewLoader(overridePath string) *Loader {
	return &Loader{OverridePath: overridePath}
}

// Load reads the configuration, falling back to defaults when no file exists.
// An explicit override path that does not exist is an error.
func (l *Loader) Load() (*Config, error) {
	if l.OverridePath != "" {
		return loadFile(l.OverridePath)
	}
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// GetConfigPath returns the first config file found, or "" if none.
func (l *Loader) GetConfigPath() string {
	if l.OverridePath != "" {
		return l.OverridePath
	}

	if wd, err := os.Getwd(); err == nil {
		local := filepath.Join(wd, FileName)
		if _, err := os.Stat(local); err == nil {
			return local
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		xdg := filepath.Join(home, ".config", "shapeboard", "config.yaml")
		if _, err := os.Stat(xdg); err == nil {
			return xdg
		}
	}

	return ""
}
