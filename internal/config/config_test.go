package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pkmforge.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
device:
  host: 10.0.0.5
  port: 7001
  timeout_ms: 2500
  write_address: "0x042DA8E8"
defaults:
  trainer_name: Misty
  trainer_id: 111
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Device.Host != "10.0.0.5" || cfg.Device.Port != 7001 {
		t.Errorf("device = %+v", cfg.Device)
	}
	if cfg.Endpoint() != "10.0.0.5:7001" {
		t.Errorf("Endpoint() = %q", cfg.Endpoint())
	}
	if cfg.Defaults.TrainerName != "Misty" || cfg.Defaults.TrainerID != 111 {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	// Untouched fields keep their defaults.
	if cfg.Defaults.SecretID != 54321 {
		t.Errorf("secret_id default lost: %d", cfg.Defaults.SecretID)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad port", "device:\n  port: 99999\n"},
		{"bad timeout", "device:\n  timeout_ms: -5\n"},
		{"bad address", "device:\n  write_address: \"party slot one\"\n"},
		{"bad yaml", "device: [not a map\n"},
	}
	for _, c := range cases {
		path := writeConfig(t, c.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load should fail", c.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestParseAddress(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0x042DA8E8", 0x042DA8E8, true},
		{"1024", 1024, true},
		{" 0x10 ", 16, true},
		{"", 0, false},
		{"party", 0, false},
	}
	for _, c := range cases {
		got, err := ParseAddress(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("ParseAddress(%q) = %d, %v; want %d", c.in, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("ParseAddress(%q) should fail", c.in)
		}
	}
}
