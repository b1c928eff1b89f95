// Package config loads snapdeck settings from defaults, a YAML file, a .env file
// and the environment, in increasing order of precedence. CLI flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"snapdeck/internal/capture"
)

// Environment variables read by Load.
const (
	ConfigPathEnv  = "SNAPDECK_CONFIG"
	ModeEnv        = "SNAPDECK_MODE"
	SelectionEnv   = "SNAPDECK_SELECTION"
	OutputDirEnv   = "SNAPDECK_OUTPUT_DIR"
	FPSEnv         = "SNAPDECK_FPS"
	MaxDurationEnv = "SNAPDECK_MAX_DURATION"
	RegionEnv      = "SNAPDECK_REGION"
	ClipboardEnv   = "SNAPDECK_CLIPBOARD"
	HotkeyEnv      = "SNAPDECK_HOTKEY"
	LogFileEnv     = "SNAPDECK_LOG_FILE"
)

const (
	DefaultFPS         = 15
	MaxFPS             = 60
	DefaultMaxDuration = 30 * time.Second
	DefaultHotkey      = "ctrl+shift+s"
	// DefaultOutputBase is joined to the user's home directory.
	DefaultOutputBase = "Pictures/snapdeck"
)

// ClipboardMode selects what is copied after a successful capture.
type ClipboardMode string

const (
	ClipboardNone  ClipboardMode = "none"
	ClipboardPath  ClipboardMode = "path"
	ClipboardImage ClipboardMode = "image"
)

// Valid reports whether m is a known clipboard mode.
func (m ClipboardMode) Valid() bool {
	switch m {
	case ClipboardNone, ClipboardPath, ClipboardImage:
		return true
	}
	return false
}

// Recording holds recording-mode settings.
type Recording struct {
	FPS         int           `yaml:"fps"`
	MaxDuration time.Duration `yaml:"max_duration"`
}

// Config holds runtime configuration.
type Config struct {
	// Mode and Selection are applied to the capture controller at startup.
	Mode      capture.Mode          `yaml:"mode"`
	Selection capture.SelectionType `yaml:"selection"`

	OutputDir string        `yaml:"output_dir"`
	Region    Region        `yaml:"region"`
	Recording Recording     `yaml:"recording"`
	Clipboard ClipboardMode `yaml:"clipboard"`
	Hotkey    string        `yaml:"hotkey"`
	LogFile   string        `yaml:"log_file"`

	// Path is the config file that was read, empty if none existed.
	Path string `yaml:"-"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Mode:      capture.ModeScreenshot,
		Selection: capture.SelectionRegion,
		Recording: Recording{FPS: DefaultFPS, MaxDuration: DefaultMaxDuration},
		Clipboard: ClipboardPath,
		Hotkey:    DefaultHotkey,
	}
}

// LoadOptions customizes Load.
type LoadOptions struct {
	// Path overrides SNAPDECK_CONFIG and the default config location.
	Path string
	// Getenv replaces os.LookupEnv; used by tests.
	Getenv func(string) (string, bool)
}

// Load builds a Config from defaults, the YAML file, a .env file and the environment.
// A missing config file is not an error.
func Load(opts LoadOptions) (*Config, error) {
	lookup := opts.Getenv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Default()
	path := resolvePath(opts.Path, lookup)
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
	}

	dotenv := readDotenv(path)
	env := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return dotenv[key]
	}
	if err := cfg.applyEnv(env); err != nil {
		return cfg, err
	}
	cfg.OutputDir = expandHome(cfg.OutputDir)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolvePath(override string, lookup func(string) (string, bool)) string {
	if p := strings.TrimSpace(override); p != "" {
		return p
	}
	if p, ok := lookup(ConfigPathEnv); ok && strings.TrimSpace(p) != "" {
		return strings.TrimSpace(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "snapdeck", "config.yaml")
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.Path = path
	return nil
}

// readDotenv looks for .env next to the config file, then in the working directory.
func readDotenv(configPath string) map[string]string {
	var candidates []string
	if configPath != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(configPath), ".env"))
	}
	candidates = append(candidates, ".env")
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		values, err := godotenv.Read(p)
		if err != nil {
			return map[string]string{}
		}
		return values
	}
	return map[string]string{}
}

func (c *Config) applyEnv(env func(string) string) error {
	if v := strings.TrimSpace(env(ModeEnv)); v != "" {
		if err := c.Mode.Set(v); err != nil {
			return fmt.Errorf("%s: %w", ModeEnv, err)
		}
	}
	if v := strings.TrimSpace(env(SelectionEnv)); v != "" {
		if err := c.Selection.Set(v); err != nil {
			return fmt.Errorf("%s: %w", SelectionEnv, err)
		}
	}
	if v := strings.TrimSpace(env(OutputDirEnv)); v != "" {
		c.OutputDir = v
	}
	if v := strings.TrimSpace(env(FPSEnv)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", FPSEnv, err)
		}
		c.Recording.FPS = n
	}
	if v := strings.TrimSpace(env(MaxDurationEnv)); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", MaxDurationEnv, err)
		}
		c.Recording.MaxDuration = d
	}
	if v := strings.TrimSpace(env(RegionEnv)); v != "" {
		r, err := ParseRegion(v)
		if err != nil {
			return fmt.Errorf("%s: %w", RegionEnv, err)
		}
		c.Region = r
	}
	if v := strings.TrimSpace(env(ClipboardEnv)); v != "" {
		c.Clipboard = ClipboardMode(strings.ToLower(v))
	}
	if v, ok := lookupNonEmpty(env, HotkeyEnv); ok {
		c.Hotkey = v
	}
	if v := strings.TrimSpace(env(LogFileEnv)); v != "" {
		c.LogFile = v
	}
	return nil
}

// lookupNonEmpty lets SNAPDECK_HOTKEY=none disable the hotkey.
func lookupNonEmpty(env func(string) string, key string) (string, bool) {
	v := strings.TrimSpace(env(key))
	if v == "" {
		return "", false
	}
	if strings.EqualFold(v, "none") {
		return "", true
	}
	return v, true
}

// Validate clamps out-of-range values and rejects unusable ones.
func (c *Config) Validate() error {
	if c.Recording.FPS <= 0 {
		c.Recording.FPS = DefaultFPS
	}
	if c.Recording.FPS > MaxFPS {
		c.Recording.FPS = MaxFPS
	}
	if c.Recording.MaxDuration <= 0 {
		c.Recording.MaxDuration = DefaultMaxDuration
	}
	if c.Clipboard == "" {
		c.Clipboard = ClipboardPath
	}
	if strings.EqualFold(strings.TrimSpace(c.Hotkey), "none") {
		c.Hotkey = ""
	}
	if !c.Clipboard.Valid() {
		return fmt.Errorf("clipboard: unknown mode %q (want none, path or image)", c.Clipboard)
	}
	if c.Region.Width < 0 || c.Region.Height < 0 {
		return fmt.Errorf("region: negative size %dx%d", c.Region.Width, c.Region.Height)
	}
	if !c.Mode.Valid() || !c.Selection.Valid() {
		return fmt.Errorf("capture: invalid default %s/%s", c.Mode, c.Selection)
	}
	return nil
}

// Save writes the configuration to path in YAML format, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
