package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/log"
	"github.com/chmouel/swipemenu/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

// options are the command line settings that shape the configuration.
type options struct {
	configFile  string
	debugLog    string
	theme       string
	menuSide    string
	staticWidth int
	items       int
	overrides   []string
}

func optionsFromCommand(cmd *urfavecli.Command) options {
	return options{
		configFile:  cmd.String("config-file"),
		debugLog:    cmd.String("debug-log"),
		theme:       cmd.String("theme"),
		menuSide:    cmd.String("menu-side"),
		staticWidth: int(cmd.Int("static-width")),
		items:       int(cmd.Int("items")),
		overrides:   cmd.StringSlice("config"),
	}
}

// loadConfig reads the configuration file and layers the flags on top. A
// config file that cannot be read is reported on stderr and replaced by the
// defaults; invalid flags are errors.
func loadConfig(opts options, stderr io.Writer) (*config.AppConfig, error) {
	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
	}
	if err := applyFlags(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.AppConfig, opts options) error {
	if err := applyThemeConfig(cfg, opts.theme); err != nil {
		return err
	}

	if opts.menuSide != "" {
		side := strings.ToLower(strings.TrimSpace(opts.menuSide))
		if side != "left" && side != "right" {
			return fmt.Errorf("invalid menu side %q, expected left or right", opts.menuSide)
		}
		cfg.MenuSide = side
	}
	if opts.staticWidth < 0 {
		return fmt.Errorf("invalid static width %d", opts.staticWidth)
	}
	if opts.staticWidth > 0 {
		cfg.DynamicMenuWidth = false
		cfg.MenuWidth = opts.staticWidth
	}
	if opts.items < 0 {
		return fmt.Errorf("invalid item count %d", opts.items)
	}
	if opts.items > 0 {
		cfg.ItemCount = opts.items
	}

	if debugLog := opts.debugLog; debugLog != "" {
		if expanded, err := config.ExpandPath(debugLog); err == nil {
			debugLog = expanded
		}
		cfg.DebugLog = debugLog
	}

	// CLI config overrides have the highest precedence.
	if len(opts.overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(opts.overrides); err != nil {
			return fmt.Errorf("error applying config overrides: %w", err)
		}
	}
	return nil
}

// applyThemeConfig applies the theme from the command line flag.
func applyThemeConfig(cfg *config.AppConfig, themeName string) error {
	if themeName == "" {
		return nil
	}

	normalized := config.NormalizeThemeName(themeName)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", themeName)
	}
	cfg.Theme = normalized
	return nil
}

// resolveTheme picks a theme matching the terminal background when none is
// configured.
func resolveTheme(cfg *config.AppConfig, hasDarkBackground func() bool) {
	if cfg.Theme != "" {
		return
	}
	if hasDarkBackground() {
		cfg.Theme = theme.DefaultDark()
	} else {
		cfg.Theme = theme.DefaultLight()
	}
}

// setupDebugLog points the debug log at the configured file, or discards
// what was buffered so far.
func setupDebugLog(path string, stderr io.Writer) {
	if path == "" {
		_ = log.SetFile("")
		return
	}
	if expanded, err := config.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}

var hasDarkBackground = lipgloss.HasDarkBackground
