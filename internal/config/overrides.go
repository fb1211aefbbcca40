package config

import (
	"fmt"
	"slices"
	"strings"
)

const overridePrefix = "sm."

// parseCLIConfigOverrides parses --config=sm.key=value arguments into a map
// suitable for apply. Repeated keys keep the last value.
func parseCLIConfigOverrides(overrides []string) (map[string]any, error) {
	result := make(map[string]any)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config override: %q, expected format: sm.key=value (note: use = not space)", override)
		}

		fullKey := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(fullKey, overridePrefix) {
			return nil, fmt.Errorf("config override key must start with %q: %q", overridePrefix, fullKey)
		}

		key := strings.TrimPrefix(fullKey, overridePrefix)
		if key == "" {
			return nil, fmt.Errorf("empty config key in override: %q", override)
		}
		if !knownKey(key) {
			return nil, fmt.Errorf("unknown config key %q", key)
		}

		result[key] = parts[1]
	}

	return result, nil
}

var configKeys = []string{
	"menu_side", "dynamic_menu_width", "menu_width", "item_count",
	"max_description_lines", "theme", "show_icons", "debug_log", "watch_config",
}

func knownKey(key string) bool {
	return slices.Contains(configKeys, key)
}

// OverrideKeys returns every key accepted by --config, with its prefix.
func OverrideKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for _, k := range configKeys {
		keys = append(keys, overridePrefix+k)
	}
	return keys
}

// ApplyCLIOverrides applies --config overrides on top of the loaded values.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	data, err := parseCLIConfigOverrides(overrides)
	if err != nil {
		return err
	}
	if themeName, ok := data["theme"].(string); ok && NormalizeThemeName(themeName) == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	apply(c, data)
	return nil
}
