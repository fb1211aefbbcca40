package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chmouel/swipemenu/internal/completion"
	urfavecli "github.com/urfave/cli/v3"
)

// completeFlags handles shell completion for the root command.
func completeFlags(_ context.Context, cmd *urfavecli.Command) {
	for _, s := range shellCompletions(os.Args) {
		_, _ = fmt.Fprintln(cmd.Root().Writer, s)
	}
}

// shellCompletions derives suggestions from the word typed before the
// completion flag.
func shellCompletions(args []string) []string {
	word := ""
	if len(args) > 1 {
		word = args[len(args)-2]
	}
	if values := completion.Suggest(word, ""); len(values) > 0 && !strings.HasPrefix(values[0], "--") {
		return values
	}
	if strings.HasPrefix(word, "-") {
		return completion.Suggest("", word)
	}
	return completion.Suggest("", "")
}
