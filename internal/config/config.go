package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file brew looks for.
const FileName = ".brew.yaml"

// Default values.
const (
	DefaultTheme  = "default"
	DefaultRepeat = 1
)

// FileConfig is the on-disk shape of .brew.yaml.
type FileConfig struct {
	Theme    string   `yaml:"theme"`
	NoColor  *bool    `yaml:"no_color"`
	Debug    *bool    `yaml:"debug"`
	Repeat   int      `yaml:"repeat"`
	Sequence []string `yaml:"sequence"`
}

// Load reads and parses the config file at path.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the first config file found by FindPath.
// A missing file is not an error; it yields an empty config and "" as path.
func LoadDefault() (*FileConfig, string, error) {
	path := FindPath()
	if path == "" {
		return &FileConfig{}, "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// FindPath returns the path of the config file to use, or "" if none exists.
// The working directory is checked before the user config directory.
func FindPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(dir, "brew", FileName)
	if _, err := os.Stat(p); err == nil {
		return p
	}
	return ""
}
