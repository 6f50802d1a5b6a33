package config

// Configuration loading and validation for pkmforge

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmassara/pkmforge/internal/errors"
)

// DeviceConfig describes the injection target.
type DeviceConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	TimeoutMs    int    `yaml:"timeout_ms"`
	WriteAddress string `yaml:"write_address"` // hex or decimal, e.g. "0x042DA8E8"
}

// TrainerDefaults pre-fills the create form and flag defaults.
type TrainerDefaults struct {
	TrainerName string `yaml:"trainer_name"`
	TrainerID   uint16 `yaml:"trainer_id"`
	SecretID    uint16 `yaml:"secret_id"`
	Language    uint16 `yaml:"language"`
}

// EmulatorConfig configures the serve command.
type EmulatorConfig struct {
	ListenIP        string `yaml:"listen_ip"`
	Port            int    `yaml:"port"`
	MemoryBase      string `yaml:"memory_base"` // hex or decimal
	MemorySize      string `yaml:"memory_size"`
	VerifyChecksums *bool  `yaml:"verify_checksums,omitempty"`
}

// Config is the top-level configuration file.
type Config struct {
	Device   DeviceConfig    `yaml:"device"`
	Defaults TrainerDefaults `yaml:"defaults"`
	Emulator EmulatorConfig  `yaml:"emulator"`
}

// DefaultConfig returns the built-in defaults used when no file is given.
func DefaultConfig() *Config {
	verify := true
	return &Config{
		Device: DeviceConfig{
			Host:         "192.168.1.73",
			Port:         6000,
			TimeoutMs:    5000,
			WriteAddress: "0x042DA8E8",
		},
		Defaults: TrainerDefaults{
			TrainerName: "Ash",
			TrainerID:   12345,
			SecretID:    54321,
			Language:    5,
		},
		Emulator: EmulatorConfig{
			ListenIP:        "127.0.0.1",
			Port:            6000,
			MemoryBase:      "0x04000000",
			MemorySize:      "0x04000000",
			VerifyChecksums: &verify,
		},
	}
}

// Load reads and validates a configuration file. Missing fields fall back
// to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("read config: %w", err), path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse config: %w", err), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapConfigError(err, path)
	}

	return cfg, nil
}

// Validate checks the configuration for values the tool cannot work with.
func (c *Config) Validate() error {
	if c.Device.Host == "" {
		return fmt.Errorf("device.host is required")
	}
	if c.Device.Port <= 0 || c.Device.Port > 65535 {
		return fmt.Errorf("device.port %d out of range", c.Device.Port)
	}
	if c.Device.TimeoutMs <= 0 {
		return fmt.Errorf("device.timeout_ms must be positive")
	}
	if _, err := ParseAddress(c.Device.WriteAddress); err != nil {
		return fmt.Errorf("device.write_address: %w", err)
	}
	if c.Emulator.Port < 0 || c.Emulator.Port > 65535 {
		return fmt.Errorf("emulator.port %d out of range", c.Emulator.Port)
	}
	if _, err := ParseAddress(c.Emulator.MemoryBase); err != nil {
		return fmt.Errorf("emulator.memory_base: %w", err)
	}
	if _, err := ParseAddress(c.Emulator.MemorySize); err != nil {
		return fmt.Errorf("emulator.memory_size: %w", err)
	}
	return nil
}

// Endpoint returns the device endpoint as host:port.
func (c *Config) Endpoint() string {
	return fmt.Sprintf("%s:%d", c.Device.Host, c.Device.Port)
}

// ParseAddress parses a memory address written in hex ("0x042DA8E8") or
// decimal.
func ParseAddress(s string) (uint64, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return 0, fmt.Errorf("address is required")
	}
	addr, err := strconv.ParseUint(clean, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return addr, nil
}
