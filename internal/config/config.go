// Package config handles loading, saving, and resolving the colortags
// configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/support"
)

const (
	// LocalConfigFilename is the per-directory colortags config file.
	LocalConfigFilename = ".colortags.yaml"
	// ConfigAPIVersion is the current config schema apiVersion.
	ConfigAPIVersion = "skaphos.io/colortags/v1"
	// ConfigKind is the current config schema kind.
	ConfigKind = "ColorTagsConfig"
	// EnvConfig overrides the config location.
	EnvConfig = "COLORTAGS_CONFIG"
)

// Delimiters holds the tag delimiter pair.
type Delimiters struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Print holds defaults for the print wrappers.
type Print struct {
	Separator string `yaml:"separator"`
	LineEnd   string `yaml:"line_end"`
	Erase     bool   `yaml:"erase"`
	NoFlush   bool   `yaml:"no_flush"`
}

// Generate holds defaults for the shell profile generator.
type Generate struct {
	File string `yaml:"file,omitempty"`
}

// Desktop holds the helper programs used for notifications and titles.
type Desktop struct {
	NotifyProgram  string `yaml:"notify_program"`
	TitleProgram   string `yaml:"title_program"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Config represents the colortags configuration.
type Config struct {
	APIVersion string     `yaml:"apiVersion"`
	Kind       string     `yaml:"kind"`
	ANSI       string     `yaml:"ansi"`
	Delimiters Delimiters `yaml:"delimiters"`
	Print      Print      `yaml:"print"`
	Generate   Generate   `yaml:"generate"`
	Desktop    Desktop    `yaml:"desktop"`
}

// DefaultConfig returns a Config with sensible defaults applied.
func DefaultConfig() Config {
	return Config{
		APIVersion: ConfigAPIVersion,
		Kind:       ConfigKind,
		ANSI:       string(support.ModeAuto),
		Delimiters: Delimiters{
			Left:  markup.DefaultDelimiters.Left,
			Right: markup.DefaultDelimiters.Right,
		},
		Print: Print{
			Separator: " ",
			LineEnd:   "\n",
		},
		Desktop: Desktop{
			NotifyProgram:  "notify-send",
			TitleProgram:   "xtitle",
			TimeoutSeconds: 5,
		},
	}
}

// Mode returns the parsed ansi mode.
func (c *Config) Mode() (support.Mode, error) {
	return support.ParseMode(c.ANSI)
}

// MarkupDelimiters returns the configured delimiter pair.
func (c *Config) MarkupDelimiters() markup.Delimiters {
	return markup.Delimiters{Left: c.Delimiters.Left, Right: c.Delimiters.Right}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validateConfigGVK(c); err != nil {
		return err
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.Delimiters.Left == "" || c.Delimiters.Right == "" {
		return errors.New("delimiters.left and delimiters.right must be non-empty")
	}
	if c.Delimiters.Left == c.Delimiters.Right {
		return fmt.Errorf("delimiters.left and delimiters.right must differ (both %q)", c.Delimiters.Left)
	}
	if c.Desktop.TimeoutSeconds < 0 {
		return errors.New("desktop.timeout_seconds must be >= 0")
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory path.
// It checks, in order: the override parameter, COLORTAGS_CONFIG env var,
// and finally os.UserConfigDir()/colortags.
func ConfigDir(override string) (string, error) {
	if override != "" {
		if isConfigFilePath(override) {
			return filepath.Dir(override), nil
		}
		return override, nil
	}

	if env := os.Getenv(EnvConfig); env != "" {
		if isConfigFilePath(env) {
			return filepath.Dir(env), nil
		}
		return env, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "colortags"), nil
}

// ConfigPath resolves the config file path from override/env/defaults.
func ConfigPath(override string) (string, error) {
	if override != "" {
		if isConfigFilePath(override) {
			return override, nil
		}
		return filepath.Join(override, "config.yaml"), nil
	}

	if env := os.Getenv(EnvConfig); env != "" {
		if isConfigFilePath(env) {
			return env, nil
		}
		return filepath.Join(env, "config.yaml"), nil
	}

	dir, err := ConfigDir("")
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// InitConfigPath resolves where "colortags config init" should write.
// Order: explicit override, COLORTAGS_CONFIG, then local dotfile in cwd.
func InitConfigPath(override, cwd string) (string, error) {
	if override != "" || os.Getenv(EnvConfig) != "" {
		return ConfigPath(override)
	}

	if strings.TrimSpace(cwd) == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(cwd, LocalConfigFilename), nil
}

// ResolveConfigPath resolves config for runtime commands.
// Order: explicit override, COLORTAGS_CONFIG, nearest local dotfile in
// cwd/parents, then global platform config path.
func ResolveConfigPath(override, cwd string) (string, error) {
	if override != "" || os.Getenv(EnvConfig) != "" {
		return ConfigPath(override)
	}

	if strings.TrimSpace(cwd) == "" {
		var err error
		cwd, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	localPath, err := FindNearestConfigPath(cwd)
	if err != nil {
		return "", err
	}
	if localPath != "" {
		return localPath, nil
	}

	return ConfigPath("")
}

// FindNearestConfigPath searches cwd and each parent directory for
// .colortags.yaml. It returns an empty string when none is found.
func FindNearestConfigPath(cwd string) (string, error) {
	dir := cwd
	for {
		candidate := filepath.Join(dir, LocalConfigFilename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads the config file from the given path. Fields missing from the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigGVK(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, returning the defaults when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		return &def, nil
	}
	return cfg, err
}

// Save writes the config to the given path.
func Save(cfg *Config, path string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	applyConfigGVK(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func isConfigFilePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func applyConfigGVK(cfg *Config) {
	if cfg == nil {
		return
	}
	if strings.TrimSpace(cfg.APIVersion) == "" {
		cfg.APIVersion = ConfigAPIVersion
	}
	if strings.TrimSpace(cfg.Kind) == "" {
		cfg.Kind = ConfigKind
	}
}

func validateConfigGVK(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if cfg.APIVersion != ConfigAPIVersion {
		return fmt.Errorf("unsupported config apiVersion %q (expected %q)", cfg.APIVersion, ConfigAPIVersion)
	}
	if cfg.Kind != ConfigKind {
		return fmt.Errorf("unsupported config kind %q (expected %q)", cfg.Kind, ConfigKind)
	}
	return nil
}
