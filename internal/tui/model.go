package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sakhi/internal/app"
)

type page int

const (
	pageAdvisory page = iota
	pageProfiles
	pageChat
	pageKnowledge
	pageCount
)

type tickMsg time.Time

// Model is the root bubbletea model: a tab bar over the four feature
// pages, mirroring the sections of the original web app.
type Model struct {
	app   *app.Application
	theme Theme

	page   page
	width  int
	height int
	ready  bool

	chat      chatModel
	profiles  profilesModel
	knowledge knowledgeModel

	quitting bool
}

// New builds the root model. The chat surface is created here and torn
// down on quit.
func New(application *app.Application) *Model {
	theme := NewTheme()
	return &Model{
		app:       application,
		theme:     theme,
		page:      pageAdvisory,
		chat:      newChatModel(application, theme),
		profiles:  newProfilesModel(application, theme),
		knowledge: newKnowledgeModel(application, theme),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.chat.init(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.chat.resize(msg.Width, m.contentHeight())
		m.profiles.resize(msg.Width, m.contentHeight())
		m.knowledge.resize(msg.Width, m.contentHeight())
		return m, nil

	case tickMsg:
		m.chat.tick()
		return m, tickCmd()

	case tea.KeyMsg:
		// Global keys first; pages only see what they own.
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			m.chat.close()
			return m, tea.Quit
		case "ctrl+l":
			m.app.ToggleLanguage()
			return m, nil
		case "ctrl+a":
			m.page = pageAdvisory
			return m, nil
		case "ctrl+p":
			m.page = pageProfiles
			return m, nil
		case "ctrl+q":
			m.page = pageChat
			return m, nil
		case "ctrl+k":
			m.page = pageKnowledge
			return m, nil
		case "tab":
			// Tab cycles pages unless the profile form wants it.
			if !(m.page == pageProfiles && m.profiles.capturesTab()) {
				m.page = (m.page + 1) % pageCount
				return m, nil
			}
		case "esc":
			if m.page == pageProfiles && m.profiles.inForm() {
				break // let the page close its form
			}
			m.quitting = true
			m.chat.close()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case pageChat:
		cmd = m.chat.update(msg)
	case pageProfiles:
		cmd = m.profiles.update(msg)
	case pageKnowledge:
		cmd = m.knowledge.update(msg)
	case pageAdvisory:
		// Advisory page: digits complete the advisory with that id.
		if key, ok := msg.(tea.KeyMsg); ok {
			s := key.String()
			if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				m.app.Advisory.MarkCompleted(int(s[0] - '0'))
			}
		}
	}
	return m, cmd
}

func (m *Model) contentHeight() int {
	// Top bar + tabs + footer.
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	var body string
	switch m.page {
	case pageAdvisory:
		body = m.advisoryView()
	case pageProfiles:
		body = m.profiles.view()
	case pageChat:
		body = m.chat.view()
	case pageKnowledge:
		body = m.knowledge.view()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.topBarView(),
		m.tabsView(),
		body,
		m.footerView(),
	)
}

func (m *Model) topBarView() string {
	title := m.theme.TopBarTitle.Render(m.app.T("app.name"))
	meta := m.theme.TopBarMeta.Render(m.app.T("app.tagline") + "  [" + string(m.app.Language()) + "]")
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(meta)
	if gap < 1 {
		gap = 1
	}
	return m.theme.TopBar.Render(title + strings.Repeat(" ", gap) + meta)
}

func (m *Model) tabsView() string {
	labels := []string{
		m.app.T("nav.advisory"),
		m.app.T("nav.profiles"),
		m.app.T("nav.queries"),
		m.app.T("nav.knowledge"),
	}
	parts := make([]string, len(labels))
	for i, label := range labels {
		if page(i) == m.page {
			parts[i] = m.theme.TabActive.Render(label)
		} else {
			parts[i] = m.theme.Tab.Render(label)
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) footerView() string {
	return m.theme.Footer.Render("tab: switch  ctrl+l: language  esc: quit")
}

func (m *Model) advisoryView() string {
	board := m.app.Advisory
	stats := board.Stats()
	header := fmt.Sprintf("%s: %d   %s: %d   %s: %d",
		m.app.T("advisory.stats.active"), stats.Active,
		m.app.T("advisory.stats.completed"), stats.Completed,
		m.app.T("advisory.stats.pending"), stats.Pending,
	)

	var b strings.Builder
	b.WriteString(m.theme.PaneTitle.Render(m.app.T("features.advisory")))
	b.WriteString("\n")
	b.WriteString(m.theme.TopBarMeta.Render(header))
	b.WriteString("\n\n")
	for _, a := range board.Advisories() {
		b.WriteString(renderAdvisory(m.theme, a))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Footer.Render("press an advisory number to mark it completed"))
	return m.theme.Pane.Width(m.paneWidth()).Render(b.String())
}

func (m *Model) paneWidth() int {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

func renderAdvisory(t Theme, a app.Advisory) string {
	var badge string
	switch a.Type {
	case app.AdvisoryUrgent:
		badge = t.BadgeUrgent.Render("URGENT")
	case app.AdvisoryRecommendation:
		badge = t.BadgeRecommend.Render("RECOMMENDED")
	default:
		badge = t.BadgeReminder.Render("REMINDER")
	}
	status := t.StatusPending.Render(string(a.Status))
	if a.Status == app.AdvisoryCompleted {
		status = t.StatusDone.Render(string(a.Status))
	}
	return fmt.Sprintf("%d. %s %s (%s)\n   %s  %s",
		a.ID, badge, a.Title, formatAgo(a.Posted), a.Description, status)
}

func formatAgo(d time.Duration) string {
	if d >= 24*time.Hour {
		days := int(d / (24 * time.Hour))
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
	hours := int(d / time.Hour)
	if hours <= 1 {
		return "1 hour ago"
	}
	return fmt.Sprintf("%d hours ago", hours)
}
