package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every config type.
type validator interface {
	Validate() error
}

// LoadDodge loads Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	return load("dodge", customPath, DefaultDodgeConfig)
}

// LoadClicker loads reaction-click configuration.
// Search order: customPath -> ~/.arcade/configs/clicker.yaml -> ./configs/clicker.yaml -> embedded default
func LoadClicker(customPath string) (ClickerConfig, error) {
	return load("clicker", customPath, DefaultClickerConfig)
}

// LoadPlatform loads front-end configuration.
// Search order: customPath -> ~/.arcade/configs/platform.yaml -> ./configs/platform.yaml -> embedded default
func LoadPlatform(customPath string) (PlatformConfig, error) {
	return load("platform", customPath, DefaultPlatformConfig)
}

// load starts from the embedded defaults and overlays the first config file
// found, so a file only needs the keys it wants to change.
func load[T validator](name, customPath string, fallback func() T) (T, error) {
	cfg := fallback()
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		cfg = fallback() // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Broken files on the search path are skipped, not fatal
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err != nil {
			continue
		}
		if err := overlay.Validate(); err != nil {
			return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
		}
		return overlay, nil
	}

	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
