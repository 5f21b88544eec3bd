// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" //  browser/web
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconTrash   = "" // trash

	// Tabs / sessions
	IconSessionStack = "" // clone/stack
	IconTab          = "" // table
	IconClock        = "" // clock
	IconRestore      = "" // rotate-left (restore)
	IconCursor       = "" // chevron-right
)
