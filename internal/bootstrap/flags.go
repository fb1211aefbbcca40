// Package bootstrap wires the swipemenu command line to the list screen.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "menu-side",
			Usage: "Edge the row menus are pinned to: left or right",
		},
		&urfavecli.IntFlag{
			Name:  "static-width",
			Usage: "Use a fixed menu width in cells instead of measuring the menu",
		},
		&urfavecli.IntFlag{
			Name:  "items",
			Usage: "Number of sample items to generate",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=sm.key=value",
		},
	}
}
