// Package cmd provides Cobra CLI commands for tabring.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bnema/tabring/internal/cli"
	"github.com/bnema/tabring/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	maxTabs    int
	logLevel   string
	logFormat  string

	rootCmd = &cobra.Command{
		Use:   "tabring",
		Short: "A session-aware tab registry for the terminal",
		Long: `tabring - a bounded ring of tabs with groups, LRU eviction and session snapshots.

Tabs live in a cyclic ring. Opening past the capacity closes the least
recently used tab. Snapshots save the open tabs on a stack and RESTORE
replays the newest one.

Run 'tabring' or 'tabring shell' for the line-oriented command loop
(scriptable from stdin), or 'tabring tui' for the interactive front end.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "path", "init", "edit":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigFile: configFile,
				Flags:      boundFlags(cmd.Flags()),
				QuietLogs:  cmd.Name() == "tui",
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runShell,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tabring/config.toml)")
	flags.IntVar(&maxTabs, "max-tabs", 0, "maximum open tabs before LRU eviction")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
}

// boundFlags maps config keys to the persistent flags that override them.
func boundFlags(flags *pflag.FlagSet) map[string]*pflag.Flag {
	return map[string]*pflag.Flag{
		"registry.max_tabs": flags.Lookup("max-tabs"),
		"logging.level":     flags.Lookup("log-level"),
		"logging.format":    flags.Lookup("log-format"),
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
