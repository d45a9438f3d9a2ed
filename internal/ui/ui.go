package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/splitview/splitview/internal/config"
	"github.com/splitview/splitview/internal/divider"
	"github.com/splitview/splitview/internal/ui/common"
	"github.com/splitview/splitview/internal/ui/flash"
	"github.com/splitview/splitview/internal/ui/intents"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/pane"
	"github.com/splitview/splitview/internal/ui/render"
	"github.com/splitview/splitview/internal/ui/splitview"
)

const eventHistoryLimit = 200

const topText = `Drag the divider below to resize the panes.

  mouse drag    move the divider
  esc           cancel a drag in progress
  ▼ / ▲         collapse or expand the bottom pane
  wheel         scroll a pane

Every layout change is logged in the bottom pane.`

type Model struct {
	split          *splitview.Model
	top            *pane.Model
	bottom         *pane.Model
	flash          *flash.Model
	help           help.Model
	keyMap         keyMap
	statusStyle    lipgloss.Style
	events         []string
	warnings       []string
	displayContext *render.DisplayContext
	width          int
	height         int
}

type keyMap struct {
	split splitview.KeyMap
	quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.quit}, k.split.ShortHelp()...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.split.FullHelp(), []key.Binding{k.quit})
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.split.Init()}
	for _, w := range m.warnings {
		cmds = append(cmds, intents.Invoke(intents.AddMessage{Text: w, Warning: true}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.split.SetSize(msg.Width, max(msg.Height-1, 0))
	case tea.KeyPressMsg:
		if key.Matches(msg, m.keyMap.quit) && !m.split.Dragging() {
			return tea.Quit
		}
		return m.split.Update(msg)
	case tea.MouseMsg:
		return m.split.Update(msg)
	case pane.ScrollMsg:
		return tea.Batch(m.top.Update(msg), m.bottom.Update(msg))
	case splitview.LayoutChangedMsg:
		m.recordLayout(msg.Layout)
		return nil
	case intents.Intent:
		return m.handleIntent(msg)
	}
	return m.flash.Update(msg)
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent.(type) {
	case intents.Quit:
		return tea.Quit
	case intents.AddMessage, intents.DismissOldest:
		return m.flash.Update(intent)
	case intents.ResetDivider:
		return tea.Batch(m.split.Update(intent), intents.Invoke(intents.AddMessage{Text: "divider reset"}))
	}
	return m.split.Update(intent)
}

func (m *Model) recordLayout(l divider.Layout) {
	state := m.split.State()
	line := "collapsed"
	if l.Expanded {
		line = fmt.Sprintf("bottom %.1f rows, divider %+.1f", l.BottomHeight, l.DividerOffsetY)
		switch {
		case state.AtTop && state.AtBottom:
			line += " (pinned)"
		case state.AtTop:
			line += " (top limit)"
		case state.AtBottom:
			line += " (bottom limit)"
		}
	}
	log.Printf("layout changed: %s", line)

	m.events = append(m.events, line)
	if len(m.events) > eventHistoryLimit {
		m.events = append([]string(nil), m.events[len(m.events)-eventHistoryLimit:]...)
	}
	m.bottom.SetContent(strings.Join(m.events, "\n"))
}

// Events returns the layout changes seen so far, oldest first.
func (m *Model) Events() []string {
	return m.events
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.displayContext = render.NewDisplayContext()
	box := layout.NewBox(layout.Rect(0, 0, m.width, m.height))
	rows := box.V(layout.Fill(1), layout.Fixed(1))
	if len(rows) < 2 {
		return ""
	}
	m.split.ViewRect(m.displayContext, rows[0])
	m.renderStatus(rows[1])
	m.flash.ViewRect(m.displayContext, rows[0])

	screenBuf := uv.NewScreenBuffer(m.width, m.height)
	m.displayContext.Render(screenBuf)
	return strings.ReplaceAll(screenBuf.Render(), "\r", "")
}

func (m *Model) renderStatus(box layout.Box) {
	if box.Empty() {
		return
	}
	status := "collapsed"
	if l := m.split.Layout(); l.Expanded {
		status = fmt.Sprintf("bottom %d", layout.Cells(l.BottomHeight))
	}
	status = m.statusStyle.Render(" " + status + " ")
	w := box.R.Dx() - lipgloss.Width(status)
	helpView := ansi.Truncate(m.help.View(m.keyMap), max(w, 0), "…")
	line := helpView + strings.Repeat(" ", max(w-lipgloss.Width(helpView), 0)) + status
	dl := m.displayContext
	dl.AddDraw(box.R, ansi.Truncate(line, box.R.Dx(), ""), render.ZBase)
}

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() tea.View {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	v := tea.NewView(w.cachedFrame)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// NewUI builds the demo screen around state. Warnings are shown as flash
// messages once the program starts.
func NewUI(cfg *config.Config, state *divider.State, palette *common.Palette, warnings []string) *Model {
	top := pane.New("top", "Top", topText)
	bottom := pane.New("bottom", "Layout changes", "")
	top.SetTitleStyle(palette.Get("pane title"))
	bottom.SetTitleStyle(palette.Get("pane title"))

	km := splitview.KeyMapFromConfig(cfg.Keys)
	split := splitview.New(state, top, bottom, nil,
		splitview.WithKeyMap(km),
		splitview.WithPalette(palette),
		splitview.WithToggleSize(cfg.Split.ToggleSize),
		splitview.WithNudgeStep(cfg.Split.NudgeStep),
		splitview.WithCancelReverts(cfg.Split.CancelReverts),
	)

	quitKeys := []string(cfg.Keys.Quit)
	if len(quitKeys) == 0 {
		quitKeys = []string{"q", "ctrl+c"}
	}

	return &Model{
		split:  split,
		top:    top,
		bottom: bottom,
		flash:  flash.New(palette, cfg.FlashTimeout()),
		help:   help.New(),
		keyMap: keyMap{
			split: km,
			quit:  key.NewBinding(key.WithKeys(quitKeys...), key.WithHelp(quitKeys[0], "quit")),
		},
		statusStyle: palette.Get("status"),
		warnings:    warnings,
	}
}

func New(cfg *config.Config, state *divider.State, palette *common.Palette, warnings []string) tea.Model {
	return &wrapper{ui: NewUI(cfg, state, palette, warnings)}
}
