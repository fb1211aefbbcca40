// Package config loads swipemenu configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chmouel/swipemenu/internal/swipe"
	"github.com/chmouel/swipemenu/internal/theme"
	"gopkg.in/yaml.v3"
)

const appName = "swipemenu"

// AppConfig defines the swipemenu configuration options.
type AppConfig struct {
	MenuSide            string // "left" or "right"
	DynamicMenuWidth    bool   // Measure the menu instead of using MenuWidth (default: true)
	MenuWidth           int    // Menu width in cells when DynamicMenuWidth is false
	ItemCount           int
	MaxDescriptionLines int
	Theme               string // Theme name: see AvailableThemes in internal/theme
	ShowIcons           bool   // Render Nerd Font icons next to items (default: true)
	DebugLog            string
	WatchConfig         bool // Reload when the config file changes (default: true)

	// Path is the file the configuration was read from, or the default
	// location when no file exists yet.
	Path string `yaml:"-"`
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		MenuSide:            "right",
		DynamicMenuWidth:    true,
		MenuWidth:           24,
		ItemCount:           30,
		MaxDescriptionLines: 9,
		ShowIcons:           true,
		WatchConfig:         true,
	}
}

// Side returns the configured menu side.
func (c *AppConfig) Side() swipe.Side {
	return swipe.ParseSide(c.MenuSide)
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case int:
		return v
	case string:
		text := strings.TrimSpace(v)
		if i, err := strconv.Atoi(text); err == nil {
			return i
		}
	}
	return defaultVal
}

// apply overlays the keys present in data onto cfg.
func apply(cfg *AppConfig, data map[string]any) {
	if side, ok := data["menu_side"].(string); ok {
		side = strings.ToLower(strings.TrimSpace(side))
		if side == "left" || side == "right" {
			cfg.MenuSide = side
		}
	}

	cfg.DynamicMenuWidth = coerceBool(data["dynamic_menu_width"], cfg.DynamicMenuWidth)
	cfg.MenuWidth = coerceInt(data["menu_width"], cfg.MenuWidth)
	cfg.ItemCount = coerceInt(data["item_count"], cfg.ItemCount)
	cfg.MaxDescriptionLines = coerceInt(data["max_description_lines"], cfg.MaxDescriptionLines)
	cfg.ShowIcons = coerceBool(data["show_icons"], cfg.ShowIcons)
	cfg.WatchConfig = coerceBool(data["watch_config"], cfg.WatchConfig)

	if themeName, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(themeName); normalized != "" {
			cfg.Theme = normalized
		}
	}

	if debugLog, ok := data["debug_log"].(string); ok {
		debugLog = strings.TrimSpace(debugLog)
		if debugLog != "" {
			cfg.DebugLog = debugLog
		}
	}

	if cfg.MenuWidth < 0 {
		cfg.MenuWidth = 0
	}
	if cfg.ItemCount < 0 {
		cfg.ItemCount = 0
	}
	if cfg.MaxDescriptionLines < 0 {
		cfg.MaxDescriptionLines = 0
	}
}

func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	apply(cfg, data)
	return cfg
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// ConfigBase returns the directory configuration files must live in.
func ConfigBase() string {
	return filepath.Clean(filepath.Join(getConfigDir(), appName))
}

// LoadConfig reads the configuration from configPath, or from config.yaml
// (then config.yml) in ConfigBase when configPath is empty. A missing file
// yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	configBase := ConfigBase()

	var paths []string
	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		if !isPathWithin(configBase, absPath) {
			return DefaultConfig(), fmt.Errorf("config path must reside inside %s", configBase)
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path is constrained to the config directory after validation
		data, err := os.ReadFile(path)
		if err != nil {
			cfg := DefaultConfig()
			cfg.Path = path
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			cfg := DefaultConfig()
			cfg.Path = path
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		cfg := parseConfig(yamlData)
		cfg.Path = path
		return cfg, nil
	}

	cfg := DefaultConfig()
	cfg.Path = paths[0]
	return cfg, nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func isPathWithin(base, target string) bool {
	base = filepath.Clean(base)
	target = filepath.Clean(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false
	}
	return true
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
