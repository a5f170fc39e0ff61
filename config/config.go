package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// OutputConfig selects the synthesizer that receives triggered notes
type OutputConfig struct {
	PortName string `json:"portName,omitempty"` // "" = first output port
	Channel  int    `json:"channel,omitempty"`  // 1-16
}

// Config is the main configuration structure
type Config struct {
	Output       OutputConfig `json:"output,omitempty"`
	Velocity     int          `json:"velocity,omitempty"`
	GateMs       int          `json:"gateMs,omitempty"`
	RootOctave   int          `json:"rootOctave,omitempty"`
	Rule         string       `json:"rule,omitempty"`
	Palette      string       `json:"palette,omitempty"`    // path to a GIMP .gpl file
	ScalesFile   string       `json:"scalesFile,omitempty"` // YAML preset catalog
	Launchpad    bool         `json:"launchpad"`
	KeyboardPort string       `json:"keyboardPort,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Output:     OutputConfig{Channel: 1},
		Velocity:   101,
		GateMs:     200,
		RootOctave: 3,
		Rule:       "B3/S23",
		Launchpad:  true,
	}
}

// Gate returns the note length.
func (c *Config) Gate() time.Duration {
	return time.Duration(c.GateMs) * time.Millisecond
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-lifeseq"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DebugLogPath returns debug.log next to the config at configPath
// ("" = ConfigPath).
func DebugLogPath(configPath string) (string, error) {
	if configPath == "" {
		p, err := ConfigPath()
		if err != nil {
			return "", err
		}
		configPath = p
	}
	return filepath.Join(filepath.Dir(configPath), "debug.log"), nil
}

// Load reads the config at path ("" = ConfigPath), or returns defaults if the
// file does not exist. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path ("" = ConfigPath)
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
