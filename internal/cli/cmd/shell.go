package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Run the line-oriented command loop",
	Long: `Read registry commands from stdin, one per line, until EXIT or end of input.

Commands (case-insensitive):
  OPEN <url> [group]   CLOSE   NEXT   PREV   SWITCH <tab_id>
  SWITCHGROUP <group>  SNAPSHOT   RESTORE   PRUNE   STATUS
  SESSIONS             HELP       EXIT

The prompt is only shown when stdin is a terminal, so scripts can pipe
commands in:
  printf 'OPEN a.com\nOPEN b.com work\nSTATUS\n' | tabring shell`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	return app.Shell.Run(app.Ctx(), cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
}
