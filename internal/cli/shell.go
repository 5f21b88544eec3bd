package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/tabring/internal/application/port"
	"github.com/bnema/tabring/internal/application/usecase"
	"github.com/bnema/tabring/internal/cli/styles"
	"github.com/bnema/tabring/internal/domain/entity"
	"github.com/bnema/tabring/internal/domain/registry"
	"github.com/bnema/tabring/internal/logging"
)

// ErrExit is returned by Execute when the EXIT command is given.
var ErrExit = errors.New("exit requested")

// sessionListLimit bounds the SESSIONS listing.
const sessionListLimit = 20

// Command is one parsed shell line.
type Command struct {
	Verb string // Upper-cased
	Args []string
}

// Arg returns the i-th argument or "" when missing.
func (c Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// ParseCommand splits a line into a verb and arguments.
// It reports false for blank lines.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Verb: strings.ToUpper(fields[0]), Args: fields[1:]}, true
}

// Shell executes text commands against a tab registry.
type Shell struct {
	tabs     *usecase.ManageTabsUseCase
	snapshot *usecase.SnapshotSessionUseCase
	restore  *usecase.RestoreSessionUseCase
	sessions *usecase.ListSnapshotsUseCase
	render   *styles.RegistryRenderer
	theme    *styles.Theme
}

// NewShell creates a shell driving reg.
func NewShell(reg port.TabRegistry, theme *styles.Theme) *Shell {
	return &Shell{
		tabs:     usecase.NewManageTabsUseCase(reg),
		snapshot: usecase.NewSnapshotSessionUseCase(reg),
		restore:  usecase.NewRestoreSessionUseCase(reg),
		sessions: usecase.NewListSnapshotsUseCase(reg),
		render:   styles.NewRegistryRenderer(theme),
		theme:    theme,
	}
}

// Tabs returns the tab use case the shell drives.
func (s *Shell) Tabs() *usecase.ManageTabsUseCase {
	return s.tabs
}

// Renderer returns the renderer used for command output.
func (s *Shell) Renderer() *styles.RegistryRenderer {
	return s.render
}

// SetTheme switches the theme used for subsequent output.
func (s *Shell) SetTheme(theme *styles.Theme) {
	s.theme = theme
	s.render = styles.NewRegistryRenderer(theme)
}

// Overview summarizes the registry for status bars.
type Overview struct {
	Tabs      []registry.TabStatus
	Capacity  int
	Snapshots int
}

// Overview returns the open tabs, the capacity and the saved snapshot count.
func (s *Shell) Overview(ctx context.Context) Overview {
	status := s.tabs.Status(ctx)
	return Overview{
		Tabs:      status.Tabs,
		Capacity:  status.Capacity,
		Snapshots: len(s.sessions.Execute(ctx, 0).Snapshots),
	}
}

// Execute runs one command line and returns its rendered output.
// Registry failures are rendered, not returned; the only error is ErrExit.
func (s *Shell) Execute(ctx context.Context, line string) (string, error) {
	cmd, ok := ParseCommand(line)
	if !ok {
		return "", nil
	}

	ctx = logging.With(ctx, map[string]any{"command": cmd.Verb})
	logging.FromContext(ctx).Debug().Strs("args", cmd.Args).Msg("executing command")

	switch cmd.Verb {
	case "OPEN":
		if len(cmd.Args) == 0 {
			return s.render.Usage("OPEN <url> [group]"), nil
		}
		return s.open(ctx, cmd.Arg(0), cmd.Arg(1)), nil
	case "CLOSE":
		return s.close(ctx), nil
	case "NEXT":
		return s.next(ctx), nil
	case "PREV":
		return s.prev(ctx), nil
	case "SWITCH":
		if len(cmd.Args) == 0 {
			return s.render.Usage("SWITCH <tab_id>"), nil
		}
		return s.switchTo(ctx, entity.TabID(cmd.Arg(0))), nil
	case "SWITCHGROUP":
		if len(cmd.Args) == 0 {
			return s.render.Usage("SWITCHGROUP <group>"), nil
		}
		return s.switchGroup(ctx, cmd.Arg(0)), nil
	case "SNAPSHOT":
		return s.save(ctx), nil
	case "RESTORE":
		return s.load(ctx), nil
	case "PRUNE":
		return s.render.Pruned(s.tabs.Prune(ctx)), nil
	case "STATUS":
		return s.render.Status(s.tabs.Status(ctx).Tabs), nil
	case "SESSIONS":
		return s.render.Sessions(s.sessions.Execute(ctx, sessionListLimit).Snapshots), nil
	case "HELP":
		return s.render.Help(), nil
	case "EXIT", "QUIT":
		return s.render.Notice("Exiting..."), ErrExit
	default:
		return s.render.Error("Unknown command."), nil
	}
}

func (s *Shell) open(ctx context.Context, url, group string) string {
	out, err := s.tabs.Open(ctx, usecase.OpenTabInput{URL: url, Group: group})
	if err != nil {
		return s.failed(err)
	}
	return s.render.Opened(out.ID, strings.TrimSpace(url), strings.TrimSpace(group), out.Evicted)
}

func (s *Shell) close(ctx context.Context) string {
	id, err := s.tabs.Close(ctx)
	if errors.Is(err, registry.ErrNoCurrentTab) {
		return s.render.Notice("No tab to close.")
	}
	if err != nil {
		return s.failed(err)
	}
	return s.render.Closed(id)
}

func (s *Shell) next(ctx context.Context) string {
	id, err := s.tabs.Next(ctx)
	if err != nil {
		return s.navigationFailed(err)
	}
	return s.render.SwitchedNext(id)
}

func (s *Shell) prev(ctx context.Context) string {
	id, err := s.tabs.Prev(ctx)
	if err != nil {
		return s.navigationFailed(err)
	}
	return s.render.SwitchedPrev(id)
}

func (s *Shell) switchTo(ctx context.Context, id entity.TabID) string {
	err := s.tabs.SwitchTo(ctx, id)
	if errors.Is(err, registry.ErrTabNotFound) {
		return s.render.Error(fmt.Sprintf("Tab %s not found.", id))
	}
	if err != nil {
		return s.failed(err)
	}
	return s.render.SwitchedTo(id)
}

func (s *Shell) switchGroup(ctx context.Context, group string) string {
	_, err := s.tabs.SwitchToGroup(ctx, group)
	if errors.Is(err, registry.ErrGroupNotFound) {
		return s.render.Error(fmt.Sprintf("Group '%s' not found.", group))
	}
	if err != nil {
		return s.failed(err)
	}
	return s.render.SwitchedGroup(group)
}

func (s *Shell) save(ctx context.Context) string {
	out, err := s.snapshot.Execute(ctx)
	if errors.Is(err, registry.ErrEmptyRegistry) {
		return s.render.Notice("No tabs to snapshot.")
	}
	if err != nil {
		return s.failed(err)
	}
	return s.render.Saved(out.Snapshot)
}

func (s *Shell) load(ctx context.Context) string {
	out, err := s.restore.Execute(ctx)
	if errors.Is(err, registry.ErrNoSnapshot) {
		return s.render.Notice("No session to restore.")
	}
	if err != nil {
		return s.failed(err)
	}
	return s.render.Restored(out.TabsRestored)
}

func (s *Shell) navigationFailed(err error) string {
	if errors.Is(err, registry.ErrEmptyRegistry) {
		return s.render.Notice("No tabs open.")
	}
	return s.failed(err)
}

func (s *Shell) failed(err error) string {
	return s.render.Error("Error processing command: " + err.Error())
}

// Run reads commands from in until EXIT or end of input, writing results
// to out. The prompt is only printed when prompt is true.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer, prompt bool) error {
	log := logging.FromContext(ctx)

	if _, err := fmt.Fprintln(out, s.render.Welcome()); err != nil {
		return fmt.Errorf("write welcome: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, s.theme.Prompt.Render(">")+" ")
		}
		if !scanner.Scan() {
			break
		}

		result, err := s.Execute(ctx, scanner.Text())
		if result != "" {
			fmt.Fprintln(out, result)
		}
		if errors.Is(err, ErrExit) {
			log.Debug().Msg("shell exited")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	log.Debug().Msg("shell reached end of input")
	return nil
}
