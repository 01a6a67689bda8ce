package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sakhi/internal/app"
)

// knowledgeModel owns the knowledge-engine page: a search input plus a
// category filter over the seeded articles.
type knowledgeModel struct {
	app    *app.Application
	theme  Theme
	width  int
	height int

	search   textinput.Model
	catIndex int
}

func newKnowledgeModel(application *app.Application, theme Theme) knowledgeModel {
	ti := textinput.New()
	ti.Placeholder = application.T("knowledge.search.placeholder")
	ti.CharLimit = 80
	ti.Width = 48
	ti.Focus()
	return knowledgeModel{app: application, theme: theme, search: ti}
}

func (k *knowledgeModel) resize(width, height int) {
	k.width = width
	k.height = height
}

func (k *knowledgeModel) update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left":
		cats := k.app.Knowledge.Categories()
		k.catIndex = (k.catIndex + len(cats) - 1) % len(cats)
		return nil
	case "right":
		cats := k.app.Knowledge.Categories()
		k.catIndex = (k.catIndex + 1) % len(cats)
		return nil
	}
	var cmd tea.Cmd
	k.search, cmd = k.search.Update(msg)
	return cmd
}

func (k *knowledgeModel) view() string {
	cats := k.app.Knowledge.Categories()
	category := cats[k.catIndex]

	var b strings.Builder
	b.WriteString(k.theme.PaneTitle.Render(k.app.T("features.knowledge")))
	b.WriteString("\n\n")
	b.WriteString(k.search.View())
	b.WriteString("\n")

	var tabs []string
	for i, c := range cats {
		label := k.app.T("knowledge.category." + c)
		if i == k.catIndex {
			tabs = append(tabs, k.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, k.theme.Tab.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	articles := k.app.Knowledge.Search(k.search.Value(), category)
	if len(articles) == 0 {
		b.WriteString(k.theme.TopBarMeta.Render("no articles match"))
	}
	for _, a := range articles {
		b.WriteString(renderArticle(k.theme, a))
		b.WriteString("\n\n")
	}

	b.WriteString(k.theme.Footer.Render("left/right: category  type to search"))
	return k.theme.Pane.Width(k.paneWidth()).Render(b.String())
}

func renderArticle(t Theme, a app.Article) string {
	header := t.PaneTitle.Render(a.Title) + " " + t.TopBarMeta.Render("("+a.ReadTime+")")
	tags := t.Suggestion.Render("#" + strings.Join(a.Tags, " #"))
	return fmt.Sprintf("%s\n%s\n%s", header, a.Summary, tags)
}

func (k *knowledgeModel) paneWidth() int {
	w := k.width - 2
	if w < 20 {
		w = 20
	}
	return w
}
