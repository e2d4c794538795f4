package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

var errBadPrecision = errors.New("must be -1 or greater")

// Load loads configuration with priority: defaults < file < overrides.
// An empty path searches the standard locations; a missing file there is not
// an error.
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	o.apply(cfg)
	if cfg.Output.Precision < -1 {
		return nil, fmt.Errorf("output precision %d: %w", cfg.Output.Precision, errBadPrecision)
	}

	return cfg, nil
}

// envConfigDir overrides ConfigDir when set.
const envConfigDir = "VECCALC_CONFIG_DIR"

// findConfigFile returns the first regular file among ./veccalc.yaml and
// ConfigDir()/config.yaml, or "" if neither exists.
func findConfigFile() string {
	for _, path := range []string{"veccalc.yaml", filepath.Join(ConfigDir(), "config.yaml")} {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the directory holding veccalc's config.yaml:
// $VECCALC_CONFIG_DIR if set, else the per-user config location.
func ConfigDir() string {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir
	}
	base, home := "", ""
	switch runtime.GOOS {
	case "darwin":
		home, _ = os.UserHomeDir()
		base = filepath.Join(home, "Library", "Application Support")
	case "windows":
		base = os.Getenv("APPDATA")
	default:
		if base = os.Getenv("XDG_CONFIG_HOME"); base == "" {
			home, _ = os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}
	return filepath.Join(base, "veccalc")
}

// loadFromFile merges a YAML file into cfg. Unknown keys are rejected so a
// misspelt setting does not silently keep its default; an empty file is fine.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
