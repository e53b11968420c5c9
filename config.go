package collision

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownStrategy     = errors.New("collision: unknown resolution strategy")
	ErrUnknownConfigFormat = errors.New("collision: unknown config format")
)

// Config is the physics configuration read by every resolution.
// It is passed explicitly and never mutated by a resolution.
type Config struct {
	// Strategy used to resolve contacts.
	Strategy Strategy `yaml:"strategy" toml:"strategy"`
	// Enables angular response in the RigidBody strategy.
	AllowRotation bool `yaml:"allowRotation" toml:"allowRotation"`
}

func DefaultConfig() Config {
	return Config{
		Strategy:      Strategy_RigidBody,
		AllowRotation: true,
	}
}

func (cfg Config) Validate() error {
	switch cfg.Strategy {
	case Strategy_Box, Strategy_RigidBody:
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
}

// LoadConfig reads a Config from a .yaml, .yml or .toml file.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := DecodeConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes data in the given format ("yaml", "yml" or "toml").
func DecodeConfig(data []byte, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal yaml: %w", err)
		}
	case "toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("unmarshal toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EncodeConfig is the inverse of DecodeConfig.
func EncodeConfig(cfg Config, format string) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.Marshal(cfg)
	case "toml":
		return toml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
}
