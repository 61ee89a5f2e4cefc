package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStack loads the stack game settings.
// Search order: customPath -> ~/.stack/configs/stack.yaml -> ./configs/stack.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadStack(customPath string) (StackConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StackConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseStack(data)
		if err != nil {
			return StackConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stack.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseStack(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "stack.yaml")); err == nil {
		if cfg, err := ParseStack(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseStack(defaultStackYAML)
	if err != nil {
		return DefaultStackConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseStack decodes YAML settings on top of DefaultStackConfig.
func ParseStack(data []byte) (StackConfig, error) {
	cfg := DefaultStackConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StackConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stack", "configs", filename)
}
