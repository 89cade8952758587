package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the herring configuration and validates it.
// Search order: customPath -> $HERRING_CONFIG -> ~/.herring/herring.yaml ->
// ./configs/herring.yaml -> embedded default.
//
// An explicitly named file (flag or environment) must exist and parse.
// Implicit locations are skipped when missing or malformed. Files are decoded
// over the defaults, so a partial file only overrides the keys it sets.
func Load(customPath string) (HerringConfig, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range implicitPaths() {
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Embedded(), nil
}

// Embedded parses the embedded default YAML, falling back to the Go defaults.
func Embedded() HerringConfig {
	cfg := DefaultHerringConfig()
	if err := yaml.Unmarshal(defaultHerringYAML, &cfg); err != nil {
		return DefaultHerringConfig()
	}
	cfg.Source = SourceEmbedded
	return cfg
}

// Marshal renders the configuration as YAML.
func (c HerringConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// loadFile decodes a YAML file over the default configuration.
func loadFile(path string) (HerringConfig, error) {
	cfg := DefaultHerringConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Source = path
	return cfg, nil
}

// implicitPaths lists the config locations tried when none is named.
func implicitPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".herring", "herring.yaml"))
	}
	return append(paths, filepath.Join("configs", "herring.yaml"))
}
