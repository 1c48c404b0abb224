package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protocore/internal/logging"
	"github.com/anirudhraja/protocore/wire"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Formats(t *testing.T) {
	want := Default()
	want.ProtoDirs = []string{"protos", "third_party"}
	want.Schemas = []string{"protos/shop.proto"}
	want.Decode.StrictWireType = true
	want.Decode.MaxSize = 1024
	want.Conformance.SkipPrefixes = []string{"protobuf_test_messages.editions."}
	want.Log.Level = "debug"

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "yaml",
			file: "protocore.yaml",
			content: `proto_dirs: [protos, " third_party ", ""]
schemas:
  - protos/shop.proto
decode:
  strict_wire_type: true
  max_size: 1024
conformance:
  skip_prefixes: ["protobuf_test_messages.editions."]
log:
  level: debug
`,
		},
		{
			name: "toml",
			file: "protocore.toml",
			content: `proto_dirs = ["protos", " third_party ", ""]
schemas = ["protos/shop.proto"]

[decode]
strict_wire_type = true
max_size = 1024

[conformance]
skip_prefixes = ["protobuf_test_messages.editions."]

[log]
level = "debug"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(cfg, want) {
				t.Errorf("got %+v\nwant %+v", cfg, want)
			}
		})
	}
}

func TestLoad_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown yaml key", "c.yaml", "colour: red\n", "colour"},
		{"unknown toml key", "c.toml", "colour = \"red\"\n", "unknown key colour"},
		{"bad extension", "c.json", "{}", "unsupported format"},
		{"bad frame limit", "c.yaml", "conformance:\n  max_frame_bytes: 0\n", "max_frame_bytes must be positive"},
		{"negative depth", "c.toml", "[decode]\nmax_depth = -1\n", "max_depth must not be negative"},
		{"bad level", "c.yaml", "log:\n  level: loud\n", "not a level"},
		{"syntax", "c.toml", "proto_dirs = [\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestConfig_UnmarshalOptions(t *testing.T) {
	cfg := Default()
	cfg.Decode = DecodeConfig{DiscardUnknown: true, ValidateUTF8: true, MaxDepth: 5}
	want := wire.UnmarshalOptions{DiscardUnknown: true, ValidateUTF8: true, MaxDepth: 5}
	if got := cfg.UnmarshalOptions(); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestConfig_Logging(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "")
	cfg := Default()
	cfg.Log = LogConfig{Level: "warn", JSON: true}

	lc := cfg.Logging(logging.ProfileRuntime)
	if lc.Level != zerolog.WarnLevel || !lc.JSON {
		t.Errorf("file settings ignored: %+v", lc)
	}

	t.Setenv(logging.EnvLogLevel, "error")
	if lc := cfg.Logging(logging.ProfileRuntime); lc.Level != zerolog.ErrorLevel {
		t.Errorf("environment should win, got %v", lc.Level)
	}
}
