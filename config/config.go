// Package config holds the layerf1 configuration: the Config type, its
// defaults, TOML persistence and the viper/cobra wiring that layers flags,
// environment variables and the config file over those defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
)

const (
	// DefaultFile is the config file looked up in the working directory.
	DefaultFile = "layerf1.toml"

	v0 = 0

	// CurrentV is the supported config version.
	CurrentV = v0
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// ValidConfigKeys returns every supported key, sorted.
func ValidConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// IsValidConfigKey reports whether key is supported.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

// Get returns the string form of key.
func (c *Config) Get(key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}
	return info.get(c), nil
}

// Set parses value into key.
func (c *Config) Set(key, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}
	return info.set(c, value)
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if _, err := groundtruth.ParseRule(c.Data.Rule); err != nil {
		return fmt.Errorf("%w: data.rule: %w", ErrInvalid, err)
	}
	if c.Output.Format != FormatJSON && c.Output.Format != FormatTOML {
		return fmt.Errorf("%w: output.format %q (want %s or %s)", ErrInvalid, c.Output.Format, FormatJSON, FormatTOML)
	}
	if c.Eval.Workers < 0 {
		return fmt.Errorf("%w: eval.workers %d", ErrInvalid, c.Eval.Workers)
	}
	if c.Eval.MaxLayers < 0 {
		return fmt.Errorf("%w: eval.max_layers %d", ErrInvalid, c.Eval.MaxLayers)
	}
	if c.Eval.Epsilon < 0 {
		return fmt.Errorf("%w: eval.epsilon %g", ErrInvalid, c.Eval.Epsilon)
	}
	return nil
}

// Rule returns the parsed ground-truth rule. Call Validate first.
func (c *Config) Rule() groundtruth.Rule {
	r, _ := groundtruth.ParseRule(c.Data.Rule)
	return r
}

// ParseConfigTOML parses raw TOML into a Config with defaults applied to
// every key the document leaves out.
func ParseConfigTOML(data []byte) (*Config, error) {
	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	if cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}
	return cfg, nil
}

// LoadFile reads the config at path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfigTOML(data)
}

// Save writes cfg to path as TOML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
