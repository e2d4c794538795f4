package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  precision: 3

logging:
  level: "debug"
  log_file: "veccalc.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Precision != 3 {
		t.Errorf("expected precision 3, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "veccalc.log" {
		t.Errorf("expected log file 'veccalc.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected default log level to survive, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  precision: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml", Overrides{}); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "veccalc.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 1\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find veccalc.yaml in current directory")
	}
}

func TestOverrides(t *testing.T) {
	two := 2
	tests := []struct {
		name   string
		o      Overrides
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug",
			o:    Overrides{Debug: true},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "log file",
			o:    Overrides{LogFile: "/var/log/veccalc.log"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "/var/log/veccalc.log" {
					t.Errorf("expected log file override, got %s", cfg.Logging.LogFile)
				}
			},
		},
		{
			name: "precision",
			o:    Overrides{Precision: &two},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Precision != 2 {
					t.Errorf("expected precision 2, got %d", cfg.Output.Precision)
				}
			},
		},
		{
			name: "none",
			o:    Overrides{},
			verify: func(t *testing.T, cfg *Config) {
				if *cfg != *Default() {
					t.Errorf("expected defaults, got %+v", cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.o.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
output:
  precision: 4
logging:
  level: error
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	one := 1
	cfg, err := Load(configPath, Overrides{Precision: &one})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Precision from the override, level from the file.
	if cfg.Output.Precision != 1 {
		t.Errorf("expected precision 1 from override, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected level error from file, got %s", cfg.Logging.Level)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Output.Precision = 9
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := Load(path, Overrides{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  precison: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for misspelt key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty file changed config: %+v", cfg)
	}
}

func TestLoadRejectsNegativePrecision(t *testing.T) {
	t.Setenv(envConfigDir, t.TempDir())
	bad := -2
	if _, err := Load("", Overrides{Precision: &bad}); !errors.Is(err, errBadPrecision) {
		t.Errorf("Load with precision -2 error = %v, want errBadPrecision", err)
	}
}

func TestConfigDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)
	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %s, want %s", got, dir)
	}
}

func TestFindConfigFileSkipsDirectory(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv(envConfigDir, filepath.Join(tmpDir, "conf"))

	if err := os.Mkdir(filepath.Join(tmpDir, "veccalc.yaml"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if path := findConfigFile(); path != "" {
		t.Errorf("expected directory to be skipped, got %s", path)
	}
}
