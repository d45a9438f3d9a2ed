package flash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/splitview/splitview/internal/ui/common"
	"github.com/splitview/splitview/internal/ui/intents"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

var _ common.ImmediateModel = (*Model)(nil)

type expireMessageMsg struct {
	id uint64
}

type flashMessage struct {
	text    string
	warning bool
	id      uint64
}

type Model struct {
	messages     []flashMessage
	timeout      time.Duration
	textStyle    lipgloss.Style
	warningStyle lipgloss.Style
	currentId    uint64
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case intents.Intent:
		return m.handleIntent(msg)
	case expireMessageMsg:
		m.removeLiveMessageByID(msg.id)
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.AddMessage:
		id := m.add(intent.Text, intent.Warning)
		if id == 0 || intent.Warning || intent.Sticky || m.timeout <= 0 {
			return nil
		}
		return tea.Tick(m.timeout, func(time.Time) tea.Msg {
			return expireMessageMsg{id: id}
		})
	case intents.DismissOldest:
		m.DeleteOldest()
	}
	return nil
}

// ViewRect stacks the live messages upwards from the bottom right corner of
// box, newest at the bottom.
func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	area := box.R
	maxWidth := area.Dx() - 4
	if maxWidth <= 0 {
		return
	}
	y := area.Max.Y
	for i := len(m.messages) - 1; i >= 0; i-- {
		content := m.renderMessageContent(m.messages[i], maxWidth)
		w, h := lipgloss.Size(content)
		y -= h
		if y < area.Min.Y {
			return
		}
		dl.AddDraw(layout.Rect(area.Max.X-w, y, w, h), content, render.ZFlash)
	}
}

func (m *Model) renderMessageContent(message flashMessage, maxWidth int) string {
	style := m.textStyle
	if message.warning {
		style = m.warningStyle
	}
	content := style.Render(message.text)
	if w, _ := lipgloss.Size(content); w > maxWidth {
		content = style.Width(maxWidth).Render(message.text)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		PaddingLeft(1).
		PaddingRight(1).
		BorderForeground(style.GetForeground()).
		Render(content)
}

func (m *Model) add(text string, warning bool) uint64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	m.currentId++
	m.messages = append(m.messages, flashMessage{id: m.currentId, text: text, warning: warning})
	return m.currentId
}

func (m *Model) removeLiveMessageByID(id uint64) bool {
	for i, message := range m.messages {
		if message.id != id {
			continue
		}
		m.messages = append(m.messages[:i], m.messages[i+1:]...)
		return true
	}
	return false
}

func (m *Model) Any() bool {
	return len(m.messages) > 0
}

func (m *Model) DeleteOldest() {
	if len(m.messages) == 0 {
		return
	}
	m.messages = m.messages[1:]
}

// New creates a flash area whose informational messages expire after timeout.
func New(palette *common.Palette, timeout time.Duration) *Model {
	return &Model{
		timeout:      timeout,
		textStyle:    palette.Get("flash text"),
		warningStyle: palette.Get("flash warning"),
	}
}
