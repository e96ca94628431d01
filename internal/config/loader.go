package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadButterfly loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/butterfly.yaml -> ./configs/butterfly.yaml -> embedded default
func LoadButterfly(customPath string) (ButterflyConfig, error) {
	cfg := DefaultButterflyConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("butterfly.yaml"); userCfgPath != "" {
		if c, ok := readConfig(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := readConfig(filepath.Join("configs", "butterfly.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultButterflyYAML, &cfg); err != nil {
		return DefaultButterflyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readConfig reads an optional config file layered over the defaults.
// Missing, unparsable or invalid files are skipped.
func readConfig(path string) (ButterflyConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ButterflyConfig{}, false
	}
	cfg := DefaultButterflyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ButterflyConfig{}, false
	}
	if cfg.Validate() != nil {
		return ButterflyConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyButterflyPreset modifies the config based on a difficulty preset.
func ApplyButterflyPreset(cfg *ButterflyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.MaxTurns = 14
		cfg.Rules.MoveIntervalMs = 80
	case DifficultyNormal:
		cfg.Rules.MaxTurns = 10
		cfg.Rules.MoveIntervalMs = 50
	case DifficultyHard:
		cfg.Rules.MaxTurns = 7
		cfg.Rules.MoveIntervalMs = 40
	}
}
