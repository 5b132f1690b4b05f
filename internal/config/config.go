package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/toolsver/internal/core"
	"github.com/indaco/toolsver/internal/directive"
	"github.com/indaco/toolsver/internal/manifest"
	"github.com/indaco/toolsver/internal/toolsversion"
	"github.com/pelletier/go-toml/v2"
)

const (
	// YAMLFile and TOMLFile are the configuration files looked up in the working directory.
	YAMLFile = ".toolsver.yaml"
	TOMLFile = ".toolsver.toml"

	// EnvManifest overrides the manifest file name.
	EnvManifest = "TOOLSVER_MANIFEST"

	// EnvCurrent overrides the current tools version.
	EnvCurrent = "TOOLSVER_CURRENT"

	// DefaultMinimumToolsVersion is assumed for manifests without a directive.
	DefaultMinimumToolsVersion = "4.0.0"
)

// DirectiveConfig customizes the spelling used for new directives.
// Built-in spellings stay recognized.
type DirectiveConfig struct {
	Marker    string `yaml:"marker,omitempty" toml:"marker,omitempty"`
	Keyword   string `yaml:"keyword,omitempty" toml:"keyword,omitempty"`
	Separator string `yaml:"separator,omitempty" toml:"separator,omitempty"`
}

// Config is the main configuration structure for toolsver.
type Config struct {
	Manifest            string           `yaml:"manifest" toml:"manifest"`
	CurrentToolsVersion string           `yaml:"current-tools-version,omitempty" toml:"current-tools-version,omitempty"`
	MinimumToolsVersion string           `yaml:"minimum-tools-version,omitempty" toml:"minimum-tools-version,omitempty"`
	Directive           *DirectiveConfig `yaml:"directive,omitempty" toml:"directive,omitempty"`
	Theme               string           `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Manifest:            manifest.DefaultName,
		MinimumToolsVersion: DefaultMinimumToolsVersion,
	}
}

// ConfigSaver encodes a Config and writes it through a core.FileSystem.
// The encoding is picked from the target file extension.
type ConfigSaver struct {
	fs         core.FileSystem
	marshalers map[string]core.Marshaler
}

// yamlMarshaler encodes configs for .yaml files.
type yamlMarshaler struct{}

func (yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// tomlMarshaler encodes configs for .toml files.
type tomlMarshaler struct{}

func (tomlMarshaler) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver writing through fs. marshalers maps a
// file extension (".yaml", ".toml") to its encoder; missing entries use the
// goccy/go-yaml and go-toml encoders.
func NewConfigSaver(fs core.FileSystem, marshalers map[string]core.Marshaler) *ConfigSaver {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	m := map[string]core.Marshaler{
		".yaml": yamlMarshaler{},
		".yml":  yamlMarshaler{},
		".toml": tomlMarshaler{},
	}
	for ext, marshaler := range marshalers {
		m[ext] = marshaler
	}
	return &ConfigSaver{fs: fs, marshalers: m}
}

// SaveTo encodes cfg according to the extension of path and atomically
// writes it there with ConfigFilePerm.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, path string) error {
	ext := filepath.Ext(path)
	marshaler, ok := s.marshalers[ext]
	if !ok {
		return fmt.Errorf("unsupported config file extension %q", ext)
	}

	data, err := marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config for %q: %w", path, err)
	}

	if err := s.fs.WriteFile(ctx, path, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", path, err)
	}
	return nil
}

var defaultConfigSaver = NewConfigSaver(nil, nil)

// LoadConfigFn and SaveConfigFn can be replaced in tests.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(ctx context.Context, cfg *Config, path string) error {
		return defaultConfigSaver.SaveTo(ctx, cfg, path)
	}
)

// loadConfig reads the configuration from the working directory.
// It returns (nil, nil) when neither a config file nor an environment
// override exists, so callers fall back to Default().
func loadConfig() (*Config, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	// Environment variables take precedence over the file.
	if envManifest := os.Getenv(EnvManifest); envManifest != "" {
		cleanPath := filepath.Clean(envManifest)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed", EnvManifest)
		}
		if cfg == nil {
			cfg = Default()
		}
		cfg.Manifest = cleanPath
	}
	if envCurrent := os.Getenv(EnvCurrent); envCurrent != "" {
		if cfg == nil {
			cfg = Default()
		}
		cfg.CurrentToolsVersion = envCurrent
	}

	return cfg, nil
}

func loadConfigFile() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(YAMLFile)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", YAMLFile, err)
		}
	case errors.Is(err, os.ErrNotExist):
		data, err = os.ReadFile(TOMLFile)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil // fallback to default
			}
			return nil, err
		}
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", TOMLFile, err)
		}
	default:
		return nil, err
	}

	if cfg.Manifest == "" {
		cfg.Manifest = manifest.DefaultName
	}
	if cfg.MinimumToolsVersion == "" {
		cfg.MinimumToolsVersion = DefaultMinimumToolsVersion
	}

	return &cfg, nil
}

// Spellings returns the directive spellings to recognize, in priority order.
// A configured directive spelling comes first and is used for insertions.
func (c *Config) Spellings() []directive.Spelling {
	if c == nil || c.Directive == nil {
		return directive.DefaultSpellings
	}

	custom := directive.CanonicalSpelling
	custom.Name = "configured"
	if c.Directive.Marker != "" {
		custom.Marker = c.Directive.Marker
	}
	if c.Directive.Keyword != "" {
		custom.Keyword = c.Directive.Keyword
	}
	if c.Directive.Separator != "" {
		custom.Separator = c.Directive.Separator[0]
	}

	spellings := []directive.Spelling{custom}
	for _, sp := range directive.DefaultSpellings {
		if sp.Marker == custom.Marker && sp.Keyword == custom.Keyword && sp.Separator == custom.Separator {
			continue
		}
		spellings = append(spellings, sp)
	}
	return spellings
}

// CurrentVersion returns the configured current tools version, or fallback
// when none is configured.
func (c *Config) CurrentVersion(fallback toolsversion.Version) (toolsversion.Version, error) {
	if c == nil || c.CurrentToolsVersion == "" {
		return fallback, nil
	}
	v, err := toolsversion.Parse(c.CurrentToolsVersion)
	if err != nil {
		return toolsversion.Version{}, fmt.Errorf("invalid current-tools-version: %w", err)
	}
	return v, nil
}

// MinimumVersion returns the minimum supported tools version.
func (c *Config) MinimumVersion() (toolsversion.Version, error) {
	raw := DefaultMinimumToolsVersion
	if c != nil && c.MinimumToolsVersion != "" {
		raw = c.MinimumToolsVersion
	}
	v, err := toolsversion.Parse(raw)
	if err != nil {
		return toolsversion.Version{}, fmt.Errorf("invalid minimum-tools-version: %w", err)
	}
	return v, nil
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
