package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabring/internal/cli/model"
	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/infrastructure/config"
	"github.com/bnema/tabring/internal/logging"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the interactive tab registry",
	Long: `Open a full-screen front end with a live tab bar and a command line.

Type the same commands as the shell, or use the shortcuts listed in the
help bar. Editing the config file while it runs reloads the colors.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := logging.WithComponent(app.Ctx(), "tui")
	m := model.NewRegistryModel(ctx, app.Theme, app.Shell)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if app.ConfigFile() != "" {
		err := app.WatchConfig(func(_ *config.Config, theme *styles.Theme) {
			p.Send(model.ThemeChangedMsg{Theme: theme})
		})
		if err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("config watching disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
