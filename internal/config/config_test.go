package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ButterflyConfig
	if err := yaml.Unmarshal(GetDefaultYAML("butterfly"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultButterflyConfig()
	if cfg.Arena != def.Arena || cfg.Rules != def.Rules {
		t.Errorf("embedded %+v %+v differs from default %+v %+v", cfg.Arena, cfg.Rules, def.Arena, def.Rules)
	}
	if len(cfg.Input.Priority) != 4 || cfg.Input.Priority[0] != "left" {
		t.Errorf("unexpected priority %v", cfg.Input.Priority)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default")
	}
}

func TestLoadButterflyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "rules:\n  max_turns: 4\n  goal_threshold: 0\n  move_interval_ms: 30\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadButterfly(path)
	if err != nil {
		t.Fatalf("LoadButterfly failed: %v", err)
	}
	if cfg.Rules.MaxTurns != 4 || cfg.Rules.GoalThreshold != 0 || cfg.Rules.MoveIntervalMs != 30 {
		t.Errorf("rules not applied: %+v", cfg.Rules)
	}
	// Unset sections keep their defaults.
	if cfg.Arena.Width != 24 || cfg.Arena.Height != 16 {
		t.Errorf("arena should keep defaults, got %+v", cfg.Arena)
	}
}

func TestLoadButterflyErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadButterfly(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("rules: [\n"), 0644)
	if _, err := LoadButterfly(bad); err == nil {
		t.Error("expected error for unparsable config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("rules:\n  max_turns: 0\n"), 0644)
	if _, err := LoadButterfly(invalid); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestLoadButterflyLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	os.MkdirAll("configs", 0755)
	os.WriteFile(filepath.Join("configs", "butterfly.yaml"), []byte("rules:\n  max_turns: 3\n"), 0644)

	cfg, err := LoadButterfly("")
	if err != nil {
		t.Fatalf("LoadButterfly failed: %v", err)
	}
	if cfg.Rules.MaxTurns != 3 {
		t.Errorf("MaxTurns = %d, want 3", cfg.Rules.MaxTurns)
	}
	if cfg.Rules.GoalThreshold != 2 {
		t.Errorf("GoalThreshold = %d, want default 2", cfg.Rules.GoalThreshold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ButterflyConfig)
		ok     bool
	}{
		{"default", func(*ButterflyConfig) {}, true},
		{"tiny arena", func(c *ButterflyConfig) { c.Arena.Width = 2 }, false},
		{"start on border", func(c *ButterflyConfig) { c.Arena.StartX = 0 }, false},
		{"start past interior", func(c *ButterflyConfig) { c.Arena.StartY = 15 }, false},
		{"no turns", func(c *ButterflyConfig) { c.Rules.MaxTurns = 0 }, false},
		{"negative threshold", func(c *ButterflyConfig) { c.Rules.GoalThreshold = -1 }, false},
		{"zero interval", func(c *ButterflyConfig) { c.Rules.MoveIntervalMs = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultButterflyConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyButterflyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		turns    int
		interval int
		enabled  bool
	}{
		{DifficultyEasy, 14, 80, true},
		{DifficultyNormal, 10, 50, true},
		{DifficultyHard, 7, 40, true},
		{DifficultyFixed, 10, 50, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultButterflyConfig()
			ApplyButterflyPreset(&cfg, tt.preset)
			if cfg.Rules.MaxTurns != tt.turns || cfg.Rules.MoveIntervalMs != tt.interval {
				t.Errorf("rules = %+v", cfg.Rules)
			}
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultButterflyConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	if !d.IsEnabled() {
		t.Fatal("manager should be enabled")
	}
	if got := d.Level(0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := d.Level(10); got != 1 {
		t.Errorf("Level past max_at = %v, want 1", got)
	}
	if got := d.MoveInterval(50, 0); got != 50 {
		t.Errorf("MoveInterval at start = %d, want 50", got)
	}
	if got := d.MoveInterval(50, 4); got != 25 {
		t.Errorf("MoveInterval at max = %d, want 25", got)
	}
	if got := d.Turns(10, 4); got != 7 {
		t.Errorf("Turns at max = %d, want 7", got)
	}
	if got := d.Turns(2, 4); got != 1 {
		t.Errorf("Turns floor = %d, want 1", got)
	}

	cfg.InitialLevel = 2
	if got := NewDifficultyManager(cfg).Level(0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyManagerWithoutProgression(t *testing.T) {
	cfg := DefaultButterflyConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("progression type none should not scale with cleared levels")
	}
	if d.Level(0) != 0.5 || d.Level(4) != 0.5 {
		t.Errorf("Level() = %v, %v, want the initial level throughout", d.Level(0), d.Level(4))
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultButterflyConfig().Difficulty)
	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if d.MoveInterval(50, 3) != 50 || d.Turns(10, 3) != 10 {
		t.Error("disabled manager must not scale")
	}
}
