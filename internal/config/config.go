// Package config loads the optional .xcsync.yaml file holding default
// project path, scheme, and parent group. Command-line flags override
// anything set here.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/orchardgrid/xcsync/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-directory configuration file xcsync looks for.
const ConfigFileName = ".xcsync.yaml"

// ErrInvalidConfig indicates the configuration file could not be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration file")

// Config holds defaults for the register and build commands.
type Config struct {
	// Project is the .xcodeproj bundle or project.pbxproj path.
	Project string `yaml:"project"`

	// Scheme is the build scheme passed to xcodebuild.
	Scheme string `yaml:"scheme"`

	// Group is the parent group new file references are inserted under.
	Group string `yaml:"group"`
}

// Load reads .xcsync.yaml from dir. A missing file is not an error; it
// yields an empty config so flags remain the only required inputs.
func Load(fs filesystem.FileSystem, dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)

	cfg := &Config{}
	if !fs.Exists(path) {
		return cfg, nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}
