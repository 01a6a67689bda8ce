package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the lipgloss styles shared by every page. The palette
// leans green to match the product branding.
type Theme struct {
	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor
	Accent      lipgloss.AdaptiveColor
	Warn        lipgloss.AdaptiveColor
	Error       lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor

	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarMeta  lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Pane        lipgloss.Style
	PaneTitle   lipgloss.Style
	Footer      lipgloss.Style
	InputBox    lipgloss.Style

	MsgUser      lipgloss.Style
	MsgAssistant lipgloss.Style
	MsgMeta      lipgloss.Style
	Suggestion   lipgloss.Style

	BadgeUrgent    lipgloss.Style
	BadgeRecommend lipgloss.Style
	BadgeReminder  lipgloss.Style
	StatusDone     lipgloss.Style
	StatusPending  lipgloss.Style

	Selected lipgloss.Style
	ErrText  lipgloss.Style
}

func NewTheme() Theme {
	if os.Getenv("SAKHI_NO_COLOR") == "1" {
		return newNoColorTheme()
	}
	t := Theme{
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		Accent:      lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"},
		Warn:        lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"},
		Error:       lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"},
		Border:      lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"},
	}
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextPrimary)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.Tab = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1)
	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1).Underline(true)
	t.Pane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.PaneTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1)

	t.MsgUser = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"})
	t.MsgAssistant = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.MsgMeta = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.Suggestion = lipgloss.NewStyle().Foreground(t.Accent)

	t.BadgeUrgent = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	t.BadgeRecommend = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"})
	t.BadgeReminder = lipgloss.NewStyle().Bold(true).Foreground(t.Warn)
	t.StatusDone = lipgloss.NewStyle().Foreground(t.Accent)
	t.StatusPending = lipgloss.NewStyle().Foreground(t.Warn)

	t.Selected = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.ErrText = lipgloss.NewStyle().Foreground(t.Error)
	return t
}

func newNoColorTheme() Theme {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	t := Theme{}
	t.TopBar = plain
	t.TopBarTitle = bold
	t.TopBarMeta = plain
	t.Tab = plain.Padding(0, 1)
	t.TabActive = bold.Padding(0, 1)
	t.Pane = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	t.PaneTitle = bold
	t.Footer = plain
	t.InputBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	t.MsgUser = bold
	t.MsgAssistant = bold
	t.MsgMeta = plain
	t.Suggestion = plain
	t.BadgeUrgent = bold
	t.BadgeRecommend = bold
	t.BadgeReminder = bold
	t.StatusDone = plain
	t.StatusPending = plain
	t.Selected = bold
	t.ErrText = bold
	return t
}
