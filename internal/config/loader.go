package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "runner.yaml"

// Sources reported by LoadRunnerFrom when no custom path is given.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, _, err := LoadRunnerFrom(customPath)
	return cfg, err
}

// LoadRunnerFrom is LoadRunner that also reports where the config came from:
// a file path, SourceEmbedded or SourceBuiltin.
//
// Files are decoded on top of DefaultRunnerConfig, so a file only needs the
// keys it changes. A custom path that is missing, malformed or invalid is an
// error; the implicit locations are skipped when unusable.
func LoadRunnerFrom(customPath string) (RunnerConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RunnerConfig{}, customPath, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(configFile),
		filepath.Join("configs", configFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := parse(defaultRunnerYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRunnerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
