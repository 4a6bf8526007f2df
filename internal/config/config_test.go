package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genesis-cli/genesis/internal/modes"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load of missing file should not error, got: %v", err)
	}
	if cfg.Storage.Root != "" || cfg.Logging.Level != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("storage = [broken"), 0o644); err != nil {
		t.Fatalf("writing broken config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of unparsable file should error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	risk := 0.8
	team := 4
	cfg := Config{
		Storage: StorageConfig{Root: "/var/lib/genesis"},
		Logging: LoggingConfig{Level: "debug"},
		Preferences: PreferencesConfig{
			RiskTolerance:   &risk,
			TeamSize:        &team,
			ValidationLevel: "enterprise",
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Storage.Root != "/var/lib/genesis" {
		t.Errorf("Storage.Root = %q, want /var/lib/genesis", got.Storage.Root)
	}
	if got.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", got.Logging.Level)
	}
	if got.Preferences.RiskTolerance == nil || *got.Preferences.RiskTolerance != 0.8 {
		t.Errorf("Preferences.RiskTolerance = %v, want 0.8", got.Preferences.RiskTolerance)
	}
	if got.Preferences.SpeedVsQuality != nil {
		t.Error("absent key should stay nil after round trip")
	}
}

func TestResolvedPreferences(t *testing.T) {
	// Empty config yields the defaults untouched.
	defaults := Config{}.ResolvedPreferences()
	if defaults != modes.DefaultPreferences() {
		t.Errorf("empty config preferences = %+v, want defaults", defaults)
	}

	// Partial overrides only touch the set fields.
	risk := 0.9
	learning := true
	cfg := Config{Preferences: PreferencesConfig{
		RiskTolerance:   &risk,
		LearningMode:    &learning,
		ValidationLevel: "high",
	}}
	got := cfg.ResolvedPreferences()

	if got.RiskTolerance != 0.9 {
		t.Errorf("RiskTolerance = %v, want 0.9", got.RiskTolerance)
	}
	if !got.LearningMode {
		t.Error("LearningMode should be overridden to true")
	}
	if got.ValidationLevel != modes.RigorHigh {
		t.Errorf("ValidationLevel = %q, want high", got.ValidationLevel)
	}
	// Untouched fields keep defaults.
	if got.SpeedVsQuality != 0.5 || got.TeamSize != 1 {
		t.Errorf("unset fields changed: speed=%v team=%d", got.SpeedVsQuality, got.TeamSize)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("merged preferences should validate, got: %v", err)
	}
}

func TestResolvedStorageRoot(t *testing.T) {
	explicit := Config{Storage: StorageConfig{Root: "/data/genesis"}}
	if got := explicit.ResolvedStorageRoot(); got != "/data/genesis" {
		t.Errorf("explicit root = %q, want /data/genesis", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tilde := Config{Storage: StorageConfig{Root: "~/custom"}}
	if got, want := tilde.ResolvedStorageRoot(), filepath.Join(home, "custom"); got != want {
		t.Errorf("tilde root = %q, want %q", got, want)
	}

	var empty Config
	if got, want := empty.ResolvedStorageRoot(), filepath.Join(home, ".genesis"); got != want {
		t.Errorf("default root = %q, want %q", got, want)
	}
}
