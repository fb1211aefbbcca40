package bootstrap

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/chmouel/swipemenu/internal/buildinfo"
	"github.com/chmouel/swipemenu/internal/theme"
	urfavecli "github.com/urfave/cli/v3"
)

func versionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			_, err := fmt.Fprint(cmd.Root().Writer, buildinfo.Summary())
			return err
		},
	}
}

func themesCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "themes",
		Usage: "List available UI themes",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			printThemes(cmd.Root().Writer)
			return nil
		},
	}
}

// printThemes lists the themes, marking the light and dark defaults.
func printThemes(w io.Writer) {
	names := theme.AvailableThemes()
	sort.Strings(names)
	_, _ = fmt.Fprintln(w, "Available themes:")
	for _, name := range names {
		note := ""
		switch name {
		case theme.DefaultDark():
			note = " (default dark)"
		case theme.DefaultLight():
			note = " (default light)"
		}
		_, _ = fmt.Fprintf(w, "  %s%s\n", name, note)
	}
}
