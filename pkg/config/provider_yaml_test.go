package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyangle.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestYAMLProviderLoadConfig(t *testing.T) {
	path := writeConfig(t, `
display:
  precision: 5
  truncate: true
  unit: hours
log-file: /var/log/skyangle.log
targets:
  - name: polaris
    position: "02 31 49.09 +89 15 50.8"
  - name: mizar
    position: "13 23 55.5 +54 55 31"
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Display.Precision != 5 {
		t.Errorf("Precision = %d, expected 5", cfg.Display.Precision)
	}
	if !cfg.Display.Truncate {
		t.Error("Truncate = false, expected true")
	}
	if cfg.Display.Unit != "hours" {
		t.Errorf("Unit = %q, expected %q", cfg.Display.Unit, "hours")
	}
	if cfg.LogFile != "/var/log/skyangle.log" {
		t.Errorf("LogFile = %q, expected %q", cfg.LogFile, "/var/log/skyangle.log")
	}

	if len(cfg.Targets) != 2 {
		t.Fatalf("Targets = %d entries, expected 2", len(cfg.Targets))
	}
	if cfg.Targets[0].Name != "polaris" {
		t.Errorf("Targets[0].Name = %q, expected %q", cfg.Targets[0].Name, "polaris")
	}
	if cfg.Targets[0].Position != "02 31 49.09 +89 15 50.8" {
		t.Errorf("Targets[0].Position = %q, expected the catalog string", cfg.Targets[0].Position)
	}
	if cfg.Targets[1].Name != "mizar" {
		t.Errorf("Targets[1].Name = %q, expected %q", cfg.Targets[1].Name, "mizar")
	}
}

func TestYAMLProviderDefaults(t *testing.T) {
	path := writeConfig(t, `
targets:
  - name: polaris
    position: "02 31 49.09 +89 15 50.8"
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Precision != 3 {
		t.Errorf("default Precision = %d, expected 3", cfg.Display.Precision)
	}
	if cfg.Display.Truncate {
		t.Error("default Truncate = true, expected false")
	}
	if cfg.Display.Unit != "" {
		t.Errorf("default Unit = %q, expected empty", cfg.Display.Unit)
	}
	if cfg.LogFile != "" {
		t.Errorf("default LogFile = %q, expected empty", cfg.LogFile)
	}
}

func TestYAMLProviderExplicitZeroPrecision(t *testing.T) {
	// Zero is a usable precision and must not be mistaken for unset
	path := writeConfig(t, `
display:
  precision: 0
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Display.Precision != 0 {
		t.Errorf("Precision = %d, expected explicit 0", cfg.Display.Precision)
	}
}

func TestYAMLProviderLazyLoad(t *testing.T) {
	// The getters load the file on first use without an explicit
	// LoadConfig call
	path := writeConfig(t, `
display:
  precision: 2
targets:
  - name: polaris
    position: "02 31 49.09 +89 15 50.8"
`)

	p := NewYAMLProvider(path)
	display, err := p.GetDisplay()
	if err != nil {
		t.Fatalf("GetDisplay error: %v", err)
	}
	if display.Precision != 2 {
		t.Errorf("Precision = %d, expected 2", display.Precision)
	}

	targets, err := p.GetTargets()
	if err != nil {
		t.Fatalf("GetTargets error: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "polaris" {
		t.Errorf("Targets = %+v, expected the single polaris entry", targets)
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	p := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := p.LoadConfig(); err == nil {
		t.Error("LoadConfig on a missing file succeeded, expected an error")
	}
	if _, err := p.GetDisplay(); err == nil {
		t.Error("GetDisplay on a missing file succeeded, expected an error")
	}
}

func TestYAMLProviderMalformed(t *testing.T) {
	path := writeConfig(t, "display: [not, a, mapping]")
	if _, err := NewYAMLProvider(path).LoadConfig(); err == nil {
		t.Error("LoadConfig on malformed YAML succeeded, expected an error")
	}
}

func TestYAMLProviderInterface(t *testing.T) {
	var p ConfigProvider = NewYAMLProvider("skyangle.yaml")
	if !p.IsReadOnly() {
		t.Error("IsReadOnly = false, expected true")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close error: %v, expected nil", err)
	}
}
