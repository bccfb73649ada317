package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// AppName is used for XDG sub-directories and file names.
const AppName = "clicky"

// Capture backends.
const (
	BackendAuto   = "auto"
	BackendGrab   = "grab"
	BackendPortal = "portal"
)

// Config holds runtime configuration for capture and app behavior.
// Fields are loaded from a JSON file; missing fields keep their defaults.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`

	// Capture
	CaptureDelayMs int    `json:"capture_delay_ms"` // wait after hiding the window
	Backend        string `json:"backend"`          // auto, grab, portal
	DefaultMode    string `json:"default_mode"`     // desktop, window, area

	// Output
	SaveDirectory string `json:"save_directory"`
	SaveFormat    string `json:"save_format"` // png or jpg
	SettingsPath  string `json:"settings_path"`

	// Preview
	PreviewMaxW int `json:"preview_max_w"`
	PreviewMaxH int `json:"preview_max_h"`

	// Last area selection
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		LogLevel:       "info",
		CaptureDelayMs: 200,
		Backend:        BackendAuto,
		DefaultMode:    "desktop",
		SaveDirectory:  defaultSaveDirectory(),
		SaveFormat:     "png",
		SettingsPath:   "",
		PreviewMaxW:    560,
		PreviewMaxH:    360,
	}
}

func defaultSaveDirectory() string {
	if dir := xdg.UserDirs.Pictures; dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Pictures")
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.CaptureDelayMs < 0 {
		c.CaptureDelayMs = 0
	}
	if c.CaptureDelayMs > 10000 {
		c.CaptureDelayMs = 10000
	}
	switch strings.ToLower(c.Backend) {
	case BackendAuto, BackendGrab, BackendPortal:
		c.Backend = strings.ToLower(c.Backend)
	default:
		c.Backend = BackendAuto
	}
	switch strings.ToLower(c.DefaultMode) {
	case "desktop", "window", "area":
		c.DefaultMode = strings.ToLower(c.DefaultMode)
	default:
		c.DefaultMode = "desktop"
	}
	switch strings.ToLower(strings.TrimPrefix(c.SaveFormat, ".")) {
	case "jpg", "jpeg":
		c.SaveFormat = "jpg"
	default:
		c.SaveFormat = "png"
	}
	if strings.TrimSpace(c.SaveDirectory) == "" {
		c.SaveDirectory = defaultSaveDirectory()
	}
	if c.PreviewMaxW < 100 {
		c.PreviewMaxW = 100
	}
	if c.PreviewMaxH < 100 {
		c.PreviewMaxH = 100
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		c.SelectionW, c.SelectionH = 0, 0
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		c.LogLevel = "info"
	}
	return nil
}

// CaptureDelay returns CaptureDelayMs as a duration.
func (c *Config) CaptureDelay() time.Duration {
	return time.Duration(c.CaptureDelayMs) * time.Millisecond
}

// Level returns the configured slog level, debug when Debug is set.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// DefaultPath returns the config file location under XDG_CONFIG_HOME,
// creating the parent directory when needed.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join(AppName, "config.json"))
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return p, nil
}

// DefaultSettingsPath returns the settings database location under XDG_DATA_HOME.
func DefaultSettingsPath() (string, error) {
	p, err := xdg.DataFile(filepath.Join(AppName, "settings.db"))
	if err != nil {
		return "", fmt.Errorf("settings path: %w", err)
	}
	return p, nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
