package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MonitorConfig controls how the host captures firmware reports
type MonitorConfig struct {
	// Serial console of the board
	Device        string `json:"device"`
	Baud          int    `json:"baud"`
	ReadTimeoutMs int    `json:"read_timeout_ms"`

	// Only print reports for these pins (empty = all pins)
	Pins []uint32 `json:"pins,omitempty"`

	// Transcript the captured reports must match
	Golden string `json:"golden,omitempty"`

	// Print field names for funcsel, overrides and interrupt events
	Explain bool `json:"explain"`

	// Stop after this many reports (0 = until the port closes)
	MaxReports int `json:"max_reports"`

	// Write every console line, not only reports
	Echo bool `json:"echo"`
}

// LoadConfig parses a JSON configuration string and returns a MonitorConfig
func LoadConfig(jsonData []byte) (*MonitorConfig, error) {
	var config MonitorConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	return &config, nil
}

// LoadConfigFile reads and parses a JSON configuration file
func LoadConfigFile(path string) (*MonitorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *MonitorConfig {
	config := &MonitorConfig{}
	applyDefaults(config)
	return config
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *MonitorConfig) {
	if config.Device == "" {
		config.Device = "/dev/ttyACM0"
	}
	if config.Baud == 0 {
		config.Baud = 115200
	}
	if config.ReadTimeoutMs < 0 {
		config.ReadTimeoutMs = 0
	}
	if config.MaxReports < 0 {
		config.MaxReports = 0
	}
}

// WantsPin reports whether reports for pin should be printed
func (c *MonitorConfig) WantsPin(pin uint32) bool {
	if len(c.Pins) == 0 {
		return true
	}
	for _, p := range c.Pins {
		if p == pin {
			return true
		}
	}
	return false
}
