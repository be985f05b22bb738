package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Sheet.Compact {
		t.Error("Default config should not request compact output")
	}
	if cfg.Sheet.OutputExtension != ".css" {
		t.Errorf("Default output extension = %q, want .css", cfg.Sheet.OutputExtension)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console log level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
sheet:
  compact: true
  output_extension: .min.css
logging:
  console:
    level: debug
  file:
    level: normal
    destination: ` + filepath.ToSlash(filepath.Join(tmpDir, "test.log")) + `
    mode: append
reporting:
  destination: ` + filepath.ToSlash(filepath.Join(tmpDir, "test-report.zip")) + `
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Sheet.Compact {
		t.Error("Sheet.Compact was not taken from the file")
	}
	if cfg.Sheet.OutputExtension != ".min.css" {
		t.Errorf("Sheet.OutputExtension = %q, want .min.css", cfg.Sheet.OutputExtension)
	}
	if cfg.Logging.FileLogger.Level != "normal" {
		t.Errorf("Logging.FileLogger.Level = %q, want normal", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
shhet:
  compact: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() accepted config with unknown field")
	}
}

func TestLoadConfiguration_BadExtension(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// output extension must start with a dot
	configContent := `version: 1
sheet:
  output_extension: css
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("LoadConfiguration() accepted bad output extension")
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "output_extension: .css") {
		t.Errorf("Dump() output does not carry sheet settings:\n%s", data)
	}
}
