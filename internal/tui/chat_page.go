package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sakhi/internal/app"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// chatModel owns the queries page: one conversation surface with a
// transcript viewport, an input box, and suggestion chips.
type chatModel struct {
	app   *app.Application
	theme Theme

	conv  *app.Conversation
	input textarea.Model
	vp    viewport.Model

	width      int
	height     int
	spinnerPos int
	status     string
	lastLen    int
}

func newChatModel(application *app.Application, theme Theme) chatModel {
	ta := textarea.New()
	ta.Placeholder = application.T("chatbot.placeholder")
	ta.Focus()
	ta.CharLimit = 500
	ta.SetHeight(1)
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return chatModel{
		app:   application,
		theme: theme,
		conv:  application.NewConversation(),
		input: ta,
		vp:    viewport.New(80, 16),
	}
}

func (c *chatModel) init() tea.Cmd {
	c.refresh()
	return textarea.Blink
}

func (c *chatModel) close() {
	if c.conv != nil {
		c.conv.Close()
	}
}

func (c *chatModel) resize(width, height int) {
	c.width = width
	c.height = height
	c.input.SetWidth(width - 6)
	vpHeight := height - 5
	if vpHeight < 3 {
		vpHeight = 3
	}
	c.vp.Width = width - 4
	c.vp.Height = vpHeight
	c.refresh()
}

// tick drives the spinner and picks up replies appended by the timer
// goroutine.
func (c *chatModel) tick() {
	if c.conv.Awaiting() {
		c.spinnerPos = (c.spinnerPos + 1) % len(spinnerFrames)
	}
	if n := len(c.conv.Transcript()); n != c.lastLen {
		c.refresh()
	}
}

func (c *chatModel) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		c.vp, cmd = c.vp.Update(msg)
		return cmd
	}

	switch keyMsg.String() {
	case "enter":
		c.submit(c.input.Value())
		return nil
	case "1", "2", "3":
		// With an empty input, digits pick a suggestion chip.
		if strings.TrimSpace(c.input.Value()) == "" {
			if s := c.suggestionAt(int(keyMsg.String()[0] - '1')); s != "" {
				c.submit(s)
				return nil
			}
		}
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		c.vp, cmd = c.vp.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *chatModel) submit(text string) {
	err := c.conv.Submit(text)
	switch {
	case err == nil:
		c.input.Reset()
		c.status = ""
		c.refresh()
	case err == app.ErrEmptyMessage:
		// Same as the original UI: sending nothing does nothing.
	case err == app.ErrReplyPending:
		c.status = "assistant is still replying..."
	default:
		c.status = err.Error()
	}
}

func (c *chatModel) suggestionAt(i int) string {
	msgs := c.conv.Transcript()
	for j := len(msgs) - 1; j >= 0; j-- {
		if msgs[j].Sender == app.SenderAssistant {
			if i >= 0 && i < len(msgs[j].Suggestions) {
				return msgs[j].Suggestions[i]
			}
			return ""
		}
	}
	return ""
}

func (c *chatModel) refresh() {
	msgs := c.conv.Transcript()
	c.lastLen = len(msgs)
	c.vp.SetContent(renderTranscript(c.theme, c.app.Config.AssistantName, msgs))
	c.vp.GotoBottom()
}

func (c *chatModel) view() string {
	var b strings.Builder
	b.WriteString(c.vp.View())
	b.WriteString("\n")
	if c.conv.Awaiting() {
		b.WriteString(c.theme.MsgMeta.Render(spinnerFrames[c.spinnerPos] + " thinking..."))
		b.WriteString("\n")
	} else if c.status != "" {
		b.WriteString(c.theme.ErrText.Render(c.status))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(c.theme.InputBox.Width(c.width - 4).Render(c.input.View()))
	return c.theme.Pane.Width(c.width - 2).Render(b.String())
}

// renderTranscript formats the messages oldest-first with suggestion
// chips under the latest assistant message.
func renderTranscript(t Theme, assistantName string, msgs []app.Message) string {
	var b strings.Builder
	lastAssistant := -1
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Sender == app.SenderAssistant {
			lastAssistant = i
			break
		}
	}
	for i, m := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(renderMessage(t, assistantName, m))
		if i == lastAssistant && len(m.Suggestions) > 0 {
			b.WriteString("\n")
			b.WriteString(renderSuggestions(t, m.Suggestions))
		}
	}
	return b.String()
}

func renderMessage(t Theme, assistantName string, m app.Message) string {
	name := "You"
	style := t.MsgUser
	if m.Sender == app.SenderAssistant {
		name = assistantName
		style = t.MsgAssistant
	}
	header := style.Render(name) + " " + t.MsgMeta.Render(m.Timestamp.Format("15:04"))
	return header + "\n" + m.Text
}

func renderSuggestions(t Theme, suggestions []string) string {
	parts := make([]string, len(suggestions))
	for i, s := range suggestions {
		parts[i] = t.Suggestion.Render(fmt.Sprintf("[%d] %s", i+1, s))
	}
	return strings.Join(parts, "  ")
}
