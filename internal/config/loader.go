package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStillRoot loads Still-Root configuration.
// Search order: customPath -> ~/.arcade/configs/stillroot.yaml -> ./configs/stillroot.yaml -> embedded default
func LoadStillRoot(customPath string, preset DifficultyPreset) (StillRootConfig, error) {
	cfg, err := load("stillroot.yaml", customPath, DefaultStillRootConfig(), defaultStillRootYAML)
	if err != nil {
		return cfg, err
	}
	ApplyStillRootPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: stillroot: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// LoadAvoider loads Plane Avoider configuration.
// Search order: customPath -> ~/.arcade/configs/avoider.yaml -> ./configs/avoider.yaml -> embedded default
func LoadAvoider(customPath string, preset DifficultyPreset) (AvoiderConfig, error) {
	cfg, err := load("avoider.yaml", customPath, DefaultAvoiderConfig(), defaultAvoiderYAML)
	if err != nil {
		return cfg, err
	}
	ApplyAvoiderPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: avoider: %w", ErrInvalid, err)
	}
	return cfg, nil
}

// ResolvePath returns the file a loader would read, or "" for the embedded default.
func ResolvePath(filename, customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// load decodes the embedded defaults and then the resolved file on top of the
// hardcoded defaults, so keys missing from a file keep their default value.
func load[T any](filename, customPath string, cfg T, embedded []byte) (T, error) {
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return cfg, fmt.Errorf("config: embedded %s: %w", filename, err)
	}

	path := ResolvePath(filename, customPath)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if customPath == "" && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalid, path, err)
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
