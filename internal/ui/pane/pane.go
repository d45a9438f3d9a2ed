// Package pane is a titled, scrollable text region for the split view.
package pane

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

// ScrollMsg is produced by the mouse wheel over a pane body.
type ScrollMsg struct {
	ID    string
	Delta int
}

func (s ScrollMsg) SetDelta(delta int) tea.Msg {
	s.Delta = delta
	return s
}

type Model struct {
	id         string
	title      string
	titleStyle lipgloss.Style
	view       viewport.Model
}

func New(id, title, content string) *Model {
	view := viewport.New()
	m := &Model{
		id:         id,
		title:      title,
		titleStyle: lipgloss.NewStyle().Reverse(true),
		view:       view,
	}
	m.SetContent(content)
	return m
}

func (m *Model) SetTitleStyle(style lipgloss.Style) {
	m.titleStyle = style
}

func (m *Model) SetContent(content string) {
	content = strings.TrimRight(strings.ReplaceAll(content, "\r", ""), "\n")
	if content == "" {
		content = "(empty)"
	}
	m.view.SetContent(content)
}

func (m *Model) Scroll(delta int) {
	if delta > 0 {
		m.view.ScrollDown(delta)
	} else if delta < 0 {
		m.view.ScrollUp(-delta)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ScrollMsg); ok && msg.ID == m.id {
		m.Scroll(msg.Delta)
	}
	return nil
}

// Render draws the title row and as much of the content as fits below it.
func (m *Model) Render(dl *render.DisplayContext, box layout.Box) {
	if box.Empty() {
		return
	}
	header, body := box.CutTop(1)
	m.renderTitle(dl, header)
	if body.Empty() {
		return
	}
	m.view.SetWidth(body.R.Dx())
	m.view.SetHeight(body.R.Dy())
	dl.AddDraw(body.R, m.view.View(), render.ZPane)
	dl.AddInteraction(body.R, ScrollMsg{ID: m.id}, render.InteractionScroll, render.ZPane)
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.Render(dl, box)
}

func (m *Model) renderTitle(dl *render.DisplayContext, row layout.Box) {
	w := row.R.Dx()
	title := ansi.Truncate(" "+m.title+" ", w, "…")
	title += strings.Repeat(" ", max(w-uniseg.StringWidth(title), 0))
	dl.AddDraw(row.R, m.titleStyle.Render(title), render.ZPane)
}
