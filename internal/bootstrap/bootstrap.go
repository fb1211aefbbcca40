package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/swipemenu/internal/app"
	"github.com/chmouel/swipemenu/internal/buildinfo"
	"github.com/chmouel/swipemenu/internal/config"
	"github.com/chmouel/swipemenu/internal/log"
	"github.com/chmouel/swipemenu/internal/sample"
	urfavecli "github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// errNotTerminal is returned when the list screen would not be visible.
var errNotTerminal = errors.New("swipemenu needs an interactive terminal")

// isTerminal reports whether stdout is a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
}

// runProgram runs the list screen until it exits.
var runProgram = func(ctx context.Context, model *app.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// NewCommand builds the swipemenu command tree.
func NewCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "swipemenu",
		Usage:                 "A list of rows that swipe open to reveal a menu",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Flags:                 globalFlags(),
		Commands: []*urfavecli.Command{
			versionCommand(),
			themesCommand(),
		},
		ShellComplete: completeFlags,
		Action:        runTUI,
	}
}

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, args []string) int {
	if err := NewCommand().Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

// runTUI is the default action that launches the list when no subcommand is
// given.
func runTUI(ctx context.Context, cmd *urfavecli.Command) error {
	stderr := cmd.Root().ErrWriter
	if stderr == nil {
		stderr = os.Stderr
	}
	opts := optionsFromCommand(cmd)

	cfg, err := loadConfig(opts, stderr)
	if err != nil {
		_ = log.Close()
		return err
	}
	setupDebugLog(cfg.DebugLog, stderr)
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(stderr, "Error closing debug log: %v\n", err)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}
	resolveTheme(cfg, hasDarkBackground)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1)) //nolint:gosec
	items := sample.Generate(cfg.ItemCount, cfg.MaxDescriptionLines, rng)
	model, err := app.NewModel(cfg, items)
	if err != nil {
		return fmt.Errorf("failed to build list: %w", err)
	}
	watchConfig(model, cfg, opts, stderr)

	err = runProgram(ctx, model)
	if cerr := model.Close(); cerr != nil {
		log.Printf("failed to stop config watcher: %v", cerr)
	}
	if err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// watchConfig reloads the configuration, with the same flags applied, when
// the config file changes.
func watchConfig(model *app.Model, cfg *config.AppConfig, opts options, stderr io.Writer) {
	if !cfg.WatchConfig {
		return
	}
	w, err := config.NewWatcher(cfg.Path, log.Scoped("config"))
	if err != nil {
		fmt.Fprintf(stderr, "Error watching config: %v\n", err)
		return
	}
	if w == nil {
		return
	}
	current := cfg.Theme
	model.WatchConfig(w, func() (*config.AppConfig, error) {
		next, err := config.LoadConfig(opts.configFile)
		if err != nil {
			return nil, err
		}
		if err := applyFlags(next, opts); err != nil {
			return nil, err
		}
		if next.Theme == "" {
			next.Theme = current
		}
		return next, nil
	})
}
