package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration, write the defaults, print the JSON schema or open the file in your editor.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after merging defaults, the config file, TABRING_* environment variables and flags.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration and its JSON schema to the config directory.

An existing file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	RunE:  runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $VISUAL or $EDITOR",
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configInitCmd, configSchemaCmd, configPathCmd, configEditCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

// resolveConfigPath returns the --config path or the XDG default.
func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("failed to get config file path: %w", err)
	}
	return path, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}

	source := app.ConfigFile()
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("# source: "+source))
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	theme := styles.NewTheme(config.DefaultConfig())

	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	written, err := config.WriteDefaultConfig(path, configForce)
	if err != nil {
		return err
	}
	if !written {
		fmt.Fprintln(cmd.OutOrStdout(), theme.WarningStyle.Render(
			fmt.Sprintf("%s Config already exists at %s (use --force to overwrite)", styles.IconWarning, path)))
		return nil
	}

	schemaFile, err := config.GenerateSchemaFile(filepath.Dir(path))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render(fmt.Sprintf("%s Wrote %s", styles.IconCheck, path)))
	fmt.Fprintln(cmd.OutOrStdout(), theme.Subtle.Render(fmt.Sprintf("%s Schema at %s", styles.IconInfo, schemaFile)))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

// runConfigEdit opens the config file in the user's editor.
func runConfigEdit(_ *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	// Prefer $VISUAL, fall back to $EDITOR
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
