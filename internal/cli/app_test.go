package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabring/internal/cli"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewApp_UsesConfigFile(t *testing.T) {
	path := writeConfig(t, `
[registry]
  max_tabs = 3
`)

	app, err := cli.NewApp(cli.AppOptions{ConfigFile: path, QuietLogs: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, 3, app.Registry.Cap())
	assert.Equal(t, 3, app.Config.Registry.MaxTabs)
	assert.Equal(t, path, app.ConfigFile())
	require.NotNil(t, app.Shell)
	require.NotNil(t, app.Ctx())
}

func TestNewApp_FlagOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[registry]
  max_tabs = 3
`)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-tabs", 0, "")
	require.NoError(t, flags.Set("max-tabs", "7"))

	app, err := cli.NewApp(cli.AppOptions{
		ConfigFile: path,
		Flags:      map[string]*pflag.Flag{"registry.max_tabs": flags.Lookup("max-tabs")},
		QuietLogs:  true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, 7, app.Registry.Cap())
}

func TestNewApp_WritesLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "tabring.log")
	path := writeConfig(t, `
[logging]
  level = "debug"
  format = "json"
  file = "`+filepath.ToSlash(logFile)+`"
`)

	app, err := cli.NewApp(cli.AppOptions{ConfigFile: path, QuietLogs: true})
	require.NoError(t, err)

	_, err = app.Shell.Execute(app.Ctx(), "OPEN a.com")
	require.NoError(t, err)
	require.NoError(t, app.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"tab registry ready"`)
	assert.Contains(t, string(data), `"message":"tab opened"`)
}

func TestNewApp_QuietLogsGoToStateFile(t *testing.T) {
	path := writeConfig(t, `
[logging]
  level = "info"
`)
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	app, err := cli.NewApp(cli.AppOptions{ConfigFile: path, QuietLogs: true})
	require.NoError(t, err)

	_, err = app.Shell.Execute(app.Ctx(), "OPEN a.com")
	require.NoError(t, err)
	require.NoError(t, app.Close())

	data, err := os.ReadFile(filepath.Join(state, "tabring", "logs", "tabring.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "tab opened")
}

func TestNewApp_RejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, `
[registry]
  max_tabs = 0
`)

	_, err := cli.NewApp(cli.AppOptions{ConfigFile: path, QuietLogs: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
