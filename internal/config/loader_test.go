package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config file on the machine is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedMatchesGoDefaults(t *testing.T) {
	embedded := Embedded()
	defaults := DefaultHerringConfig()

	if embedded != defaults {
		t.Errorf("Embedded YAML and DefaultHerringConfig diverge:\n yaml: %+v\n   go: %+v", embedded, defaults)
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Source = %q, expected %q", cfg.Source, SourceEmbedded)
	}
	if cfg.Obstacles.SpawnIntervalMs != 1500 {
		t.Errorf("Pipe interval = %d, expected 1500", cfg.Obstacles.SpawnIntervalMs)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "physics:\n  gravity: 0.5\nhazards:\n  speed: 6\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Gravity = %v, expected 0.5", cfg.Physics.Gravity)
	}
	if cfg.Hazards.Speed != 6 {
		t.Errorf("Hazard speed = %v, expected 6", cfg.Hazards.Speed)
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.FlapImpulse != -7 {
		t.Errorf("FlapImpulse = %v, expected default -7", cfg.Physics.FlapImpulse)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing explicit path")
	}
	if !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("Error should name the file, got %v", err)
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "physics: [not, a, map\n")

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "upward.yaml")
	writeFile(t, path, "physics:\n  flap_impulse: 7\n")

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yaml")
	writeFile(t, path, "field:\n  width: 800\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Field.Width != 800 {
		t.Errorf("Field width = %v, expected 800", cfg.Field.Width)
	}
}

func TestLoadImplicitLocations(t *testing.T) {
	dir := isolate(t)

	// Local ./configs is used when no home config exists
	writeFile(t, filepath.Join(dir, "configs", "herring.yaml"), "player:\n  width: 20\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Width != 20 {
		t.Errorf("Player width = %v, expected 20 from ./configs", cfg.Player.Width)
	}

	// Home config wins over ./configs
	writeFile(t, filepath.Join(dir, ".herring", "herring.yaml"), "player:\n  width: 10\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Width != 10 {
		t.Errorf("Player width = %v, expected 10 from home config", cfg.Player.Width)
	}
}

func TestLoadImplicitMalformedIsSkipped(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "configs", "herring.yaml"), "::: nope")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Source != SourceEmbedded {
		t.Errorf("Malformed implicit config should fall through, source = %q", cfg.Source)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HerringConfig)
	}{
		{"zero field", func(c *HerringConfig) { c.Field.Height = 0 }},
		{"player taller than field", func(c *HerringConfig) { c.Player.Height = 600 }},
		{"negative gravity", func(c *HerringConfig) { c.Physics.Gravity = -1 }},
		{"downward flap", func(c *HerringConfig) { c.Physics.FlapImpulse = 0 }},
		{"gap does not fit", func(c *HerringConfig) { c.Obstacles.GapHeight = 550 }},
		{"zero hazard size", func(c *HerringConfig) { c.Hazards.Size = 0 }},
		{"negative speed", func(c *HerringConfig) { c.Powerups.Speed = -2 }},
		{"zero spawn interval", func(c *HerringConfig) { c.Obstacles.SpawnIntervalMs = 0 }},
		{"zero invincibility", func(c *HerringConfig) { c.Powerups.InvincibilityMs = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHerringConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultHerringConfig()
	cfg.Obstacles.GapHeight = 180
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if strings.Contains(string(data), "source") {
		t.Error("Source should not be serialized")
	}

	path := filepath.Join(dir, "dump.yaml")
	writeFile(t, path, string(data))

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Obstacles.GapHeight != 180 {
		t.Errorf("GapHeight = %v, expected 180", loaded.Obstacles.GapHeight)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HERRING_TEST_VALUE", "set")

	if got := GetEnv("HERRING_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected %q", got, "set")
	}
	if got := GetEnv("HERRING_TEST_UNSET_VALUE", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}
