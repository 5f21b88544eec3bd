package cli_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabring/internal/cli"
	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/domain/registry"
	"github.com/bnema/tabring/internal/infrastructure/config"
	"github.com/bnema/tabring/internal/logging"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type tickClock struct{ now time.Time }

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newTestShell(maxTabs int) (*cli.Shell, *registry.Registry) {
	reg := registry.New(maxTabs,
		registry.WithClock(&tickClock{now: time.Unix(1_700_000_000, 0)}),
		registry.WithSnapshotIDGenerator(func() string { return "snap-0001" }),
	)
	return cli.NewShell(reg, styles.NewTheme(config.DefaultConfig())), reg
}

func exec(t *testing.T, sh *cli.Shell, line string) string {
	t.Helper()
	out, err := sh.Execute(testContext(), line)
	require.NoError(t, err)
	return out
}

func TestParseCommand(t *testing.T) {
	cmd, ok := cli.ParseCommand("  open   example.com  work ")
	require.True(t, ok)
	assert.Equal(t, "OPEN", cmd.Verb)
	assert.Equal(t, []string{"example.com", "work"}, cmd.Args)
	assert.Equal(t, "work", cmd.Arg(1))
	assert.Equal(t, "", cmd.Arg(2))

	_, ok = cli.ParseCommand("   ")
	assert.False(t, ok)
}

func TestShell_OpenAndStatus(t *testing.T) {
	sh, _ := newTestShell(5)

	assert.Equal(t, "Tab T1 opened: a.com", exec(t, sh, "OPEN a.com"))
	assert.Equal(t, "Tab T2 opened: b.com (Group: work)", exec(t, sh, "open b.com work"))
	assert.Equal(t, "Tabs Status:\nT1: a.com\nT2: b.com | work <- ACTIVE", exec(t, sh, "STATUS"))
}

func TestShell_CapacityEviction(t *testing.T) {
	sh, reg := newTestShell(2)

	exec(t, sh, "OPEN a.com")
	exec(t, sh, "OPEN b.com")
	out := exec(t, sh, "OPEN c.com")

	assert.Equal(t, "LRU limit exceeded. Closing tab T1\nTab T3 opened: c.com", out)
	assert.Equal(t, 2, reg.Len())
}

func TestShell_Navigation(t *testing.T) {
	sh, _ := newTestShell(5)

	assert.Equal(t, "No tabs open.", exec(t, sh, "NEXT"))
	assert.Equal(t, "No tabs open.", exec(t, sh, "PREV"))

	exec(t, sh, "OPEN a.com")
	exec(t, sh, "OPEN b.com news")
	exec(t, sh, "OPEN c.com")

	assert.Equal(t, "Switched to next tab: T1", exec(t, sh, "NEXT"))
	assert.Equal(t, "Switched to previous tab: T3", exec(t, sh, "PREV"))
	assert.Equal(t, "Switched to tab T2", exec(t, sh, "SWITCH T2"))
	assert.Equal(t, "Tab T9 not found.", exec(t, sh, "SWITCH T9"))
	assert.Equal(t, "Switched to group news", exec(t, sh, "SWITCHGROUP news"))
	assert.Equal(t, "Group 'work' not found.", exec(t, sh, "SWITCHGROUP work"))
}

func TestShell_CloseGroupedTabThenSwitchGroupFails(t *testing.T) {
	sh, _ := newTestShell(5)

	exec(t, sh, "OPEN a.com work")
	assert.Equal(t, "T1 closed.", exec(t, sh, "CLOSE"))
	assert.Equal(t, "Group 'work' not found.", exec(t, sh, "SWITCHGROUP work"))
	assert.Equal(t, "No tab to close.", exec(t, sh, "CLOSE"))
}

func TestShell_SnapshotRestore(t *testing.T) {
	sh, reg := newTestShell(5)

	assert.Equal(t, "No tabs to snapshot.", exec(t, sh, "SNAPSHOT"))
	assert.Equal(t, "No session to restore.", exec(t, sh, "RESTORE"))

	exec(t, sh, "OPEN a.com")
	exec(t, sh, "OPEN b.com work")
	assert.Equal(t, "Session saved (2 tabs).", exec(t, sh, "SNAPSHOT"))
	assert.Contains(t, exec(t, sh, "SESSIONS"), "1. 0001  2 tabs  active T2")

	exec(t, sh, "OPEN c.com")
	assert.Equal(t, "Session restored (2 tabs).", exec(t, sh, "RESTORE"))
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "Tabs Status:\nT1: a.com\nT2: b.com | work <- ACTIVE", exec(t, sh, "STATUS"))
	assert.Equal(t, "No saved sessions.", exec(t, sh, "SESSIONS"))
}

func TestShell_Prune(t *testing.T) {
	sh, reg := newTestShell(5)

	exec(t, sh, "OPEN a.com")
	exec(t, sh, "OPEN b.com")
	exec(t, sh, "OPEN a.com")

	assert.Equal(t, "Pruned duplicates. Closed T1.", exec(t, sh, "PRUNE"))
	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, "Pruned duplicates.", exec(t, sh, "PRUNE"))
}

func TestShell_UsageAndUnknown(t *testing.T) {
	sh, _ := newTestShell(5)

	assert.Equal(t, "Usage: OPEN <url> [group]", exec(t, sh, "OPEN"))
	assert.Equal(t, "Usage: SWITCH <tab_id>", exec(t, sh, "SWITCH"))
	assert.Equal(t, "Usage: SWITCHGROUP <group>", exec(t, sh, "SWITCHGROUP"))
	assert.Equal(t, "Unknown command.", exec(t, sh, "BOOKMARK a.com"))
	assert.Equal(t, "", exec(t, sh, ""))
}

func TestShell_Exit(t *testing.T) {
	sh, _ := newTestShell(5)

	out, err := sh.Execute(testContext(), "exit")
	require.ErrorIs(t, err, cli.ErrExit)
	assert.Equal(t, "Exiting...", out)
}

func TestShell_RunScript(t *testing.T) {
	sh, reg := newTestShell(5)
	script := strings.Join([]string{
		"OPEN a.com",
		"",
		"OPEN b.com work",
		"STATUS",
		"EXIT",
		"OPEN never.com",
	}, "\n")

	var out bytes.Buffer
	err := sh.Run(testContext(), strings.NewReader(script), &out, false)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Commands: "+styles.CommandSummary)
	assert.Contains(t, text, "Tab T2 opened: b.com (Group: work)")
	assert.Contains(t, text, "T2: b.com | work <- ACTIVE")
	assert.True(t, strings.HasSuffix(text, "Exiting...\n"))
	assert.Equal(t, 2, reg.Len())
}

func TestShell_RunStopsAtEndOfInput(t *testing.T) {
	sh, reg := newTestShell(5)

	var out bytes.Buffer
	err := sh.Run(testContext(), strings.NewReader("OPEN a.com\n"), &out, true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "> Tab T1 opened: a.com")
	assert.Equal(t, 1, reg.Len())
}

func TestShell_Overview(t *testing.T) {
	sh, _ := newTestShell(3)

	exec(t, sh, "OPEN a.com")
	exec(t, sh, "SNAPSHOT")

	ov := sh.Overview(testContext())
	assert.Len(t, ov.Tabs, 1)
	assert.Equal(t, 3, ov.Capacity)
	assert.Equal(t, 1, ov.Snapshots)
}
