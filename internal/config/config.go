// Package config loads the settings shared by the command line tool and the
// conformance harness from a YAML or TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/anirudhraja/protocore/internal/logging"
	"github.com/anirudhraja/protocore/wire"
)

// DefaultMaxFrameBytes caps a conformance request frame.
const DefaultMaxFrameBytes = 64 << 20

type Config struct {
	// ProtoDirs are the roots .proto imports resolve against.
	ProtoDirs []string `yaml:"proto_dirs" toml:"proto_dirs"`
	// Schemas are .proto files or directories loaded at startup.
	Schemas []string `yaml:"schemas" toml:"schemas"`
	// DescriptorSets are files written by protoc --descriptor_set_out.
	DescriptorSets []string `yaml:"descriptor_sets" toml:"descriptor_sets"`

	Decode      DecodeConfig      `yaml:"decode" toml:"decode"`
	Conformance ConformanceConfig `yaml:"conformance" toml:"conformance"`
	Log         LogConfig         `yaml:"log" toml:"log"`
}

type DecodeConfig struct {
	StrictWireType bool `yaml:"strict_wire_type" toml:"strict_wire_type"`
	DiscardUnknown bool `yaml:"discard_unknown" toml:"discard_unknown"`
	ValidateUTF8   bool `yaml:"validate_utf8" toml:"validate_utf8"`
	MaxDepth       int  `yaml:"max_depth" toml:"max_depth"`
	MaxSize        int  `yaml:"max_size" toml:"max_size"`
}

type ConformanceConfig struct {
	MaxFrameBytes int `yaml:"max_frame_bytes" toml:"max_frame_bytes"`
	// SkipPrefixes lists message type prefixes answered with "skipped".
	SkipPrefixes []string `yaml:"skip_prefixes" toml:"skip_prefixes"`
	// MetricsAddr, when set, serves prometheus metrics on /metrics.
	MetricsAddr string `yaml:"metrics_addr" toml:"metrics_addr"`
}

type LogConfig struct {
	Level   string `yaml:"level" toml:"level"`
	NoColor bool   `yaml:"no_color" toml:"no_color"`
	JSON    bool   `yaml:"json" toml:"json"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Decode:      DecodeConfig{MaxDepth: wire.DefaultMaxDepth},
		Conformance: ConformanceConfig{MaxFrameBytes: DefaultMaxFrameBytes},
		Log:         LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .yaml, .yml or .toml. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("parse %s: unknown key %s", path, undecoded[0])
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	cfg.ProtoDirs = normalize(cfg.ProtoDirs)
	cfg.Schemas = normalize(cfg.Schemas)
	cfg.DescriptorSets = normalize(cfg.DescriptorSets)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	if c.Decode.MaxDepth < 0 {
		return fmt.Errorf("decode.max_depth must not be negative, got %d", c.Decode.MaxDepth)
	}
	if c.Decode.MaxSize < 0 {
		return fmt.Errorf("decode.max_size must not be negative, got %d", c.Decode.MaxSize)
	}
	if c.Conformance.MaxFrameBytes <= 0 {
		return fmt.Errorf("conformance.max_frame_bytes must be positive, got %d", c.Conformance.MaxFrameBytes)
	}
	if c.Log.Level != "" {
		if _, ok := logging.ParseLevel(c.Log.Level); !ok {
			return fmt.Errorf("log.level %q is not a level", c.Log.Level)
		}
	}
	return nil
}

// UnmarshalOptions returns the decode settings as codec options.
func (c Config) UnmarshalOptions() wire.UnmarshalOptions {
	return wire.UnmarshalOptions{
		StrictWireType: c.Decode.StrictWireType,
		DiscardUnknown: c.Decode.DiscardUnknown,
		ValidateUTF8:   c.Decode.ValidateUTF8,
		MaxDepth:       c.Decode.MaxDepth,
		MaxSize:        c.Decode.MaxSize,
	}
}

// Logging returns the log settings, with environment overrides applied on
// top of the file.
func (c Config) Logging(profile logging.Profile) logging.Config {
	lc := logging.DefaultConfig(profile)
	if lvl, ok := logging.ParseLevel(c.Log.Level); ok && lvl != lc.Level {
		if _, fromEnv := logging.ParseLevel(os.Getenv(logging.EnvLogLevel)); !fromEnv {
			lc.Level = lvl
		}
	}
	lc.NoColor = lc.NoColor || c.Log.NoColor
	lc.JSON = lc.JSON || c.Log.JSON
	return lc
}

func normalize(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
