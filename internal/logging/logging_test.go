package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
		ok   bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"diagnostics", zerolog.TraceLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogTimestamp, "not-a-bool")

	cfg := DefaultConfig(ProfileTest)
	if cfg.Level != zerolog.ErrorLevel {
		t.Errorf("level = %v, want error", cfg.Level)
	}
	if !cfg.NoColor {
		t.Error("NoColor override ignored")
	}
	if cfg.Timestamp {
		t.Error("an invalid timestamp override should keep the test default")
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New("protocore-test", Config{Level: zerolog.InfoLevel, JSON: true, Out: &buf})

	logger.Debug().Msg("hidden")
	logger.Info().Int("frames", 3).Msg("served")

	var line map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if line["app"] != "protocore-test" || line["message"] != "served" || line["frames"] != float64(3) {
		t.Errorf("unexpected log line %v", line)
	}
	if _, ok := line["time"]; ok {
		t.Error("timestamp written although disabled")
	}
}
