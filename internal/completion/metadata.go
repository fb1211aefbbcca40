// Package completion describes the swipemenu flags for shell completion.
package completion

import (
	"strings"

	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/theme"
)

// FlagInfo contains metadata about a command-line flag for completion generation.
type FlagInfo struct {
	Name        string   // Flag name without dashes
	Description string   // Human-readable description
	HasValue    bool     // true for valued flags, false for bool flags
	ValueHint   string   // Hint for value type (e.g., "PATH", "NAME")
	Values      []string // Enumerated values for completion (e.g., theme names)
}

// GetFlags returns metadata for all swipemenu command-line flags.
func GetFlags() []FlagInfo {
	return []FlagInfo{
		{
			Name:        "debug-log",
			Description: "Path to debug log file",
			HasValue:    true,
			ValueHint:   "PATH",
		},
		{
			Name:        "theme",
			Description: "Override UI theme",
			HasValue:    true,
			ValueHint:   "NAME",
			Values:      theme.AvailableThemes(),
		},
		{
			Name:        "menu-side",
			Description: "Edge the row menus are pinned to",
			HasValue:    true,
			ValueHint:   "SIDE",
			Values:      []string{"left", "right"},
		},
		{
			Name:        "static-width",
			Description: "Fixed menu width in cells",
			HasValue:    true,
			ValueHint:   "CELLS",
		},
		{
			Name:        "items",
			Description: "Number of sample items",
			HasValue:    true,
			ValueHint:   "N",
		},
		{
			Name:        "config-file",
			Description: "Path to configuration file",
			HasValue:    true,
			ValueHint:   "FILE",
		},
		{
			Name:        "config",
			Description: "Override config values",
			HasValue:    true,
			ValueHint:   "KEY=VALUE",
			Values:      configValues(),
		},
		{
			Name:        "version",
			Description: "Print version information",
			HasValue:    false,
		},
	}
}

// configValues suggests "sm.key=" for every overridable key.
func configValues() []string {
	keys := config.OverrideKeys()
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		values = append(values, k+"=")
	}
	return values
}

// Suggest returns completions for the word after prev. After a flag taking
// enumerated values it offers those values, otherwise the flag names.
func Suggest(prev, current string) []string {
	flags := GetFlags()
	if name, ok := strings.CutPrefix(prev, "--"); ok {
		for _, f := range flags {
			if f.Name == name && f.HasValue {
				return filterPrefix(f.Values, current)
			}
		}
	}

	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, "--"+f.Name)
	}
	return filterPrefix(names, current)
}

func filterPrefix(values []string, prefix string) []string {
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
