// Package splitview is a vertically resizable split view with a draggable
// divider and a collapsible bottom pane.
package splitview

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/splitview/splitview/internal/divider"
	"github.com/splitview/splitview/internal/ui/common"
	"github.com/splitview/splitview/internal/ui/intents"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

const (
	toggleWidth = 3
	gripWidth   = 8
)

var _ common.ImmediateModel = (*Model)(nil)

// DragStartMsg is produced when the divider control is pressed.
type DragStartMsg struct {
	X int
	Y int
}

// SetDragStart implements render.DragStartCarrier.
func (m DragStartMsg) SetDragStart(x, y int) tea.Msg {
	m.X = x
	m.Y = y
	return m
}

// ToggleMsg is produced when the toggle control is clicked.
type ToggleMsg struct{}

// LayoutChangedMsg is emitted after every mutation that changed the layout.
type LayoutChangedMsg struct {
	Layout divider.Layout
}

type styles struct {
	divider         lipgloss.Style
	dividerDragging lipgloss.Style
	dividerBoundary lipgloss.Style
	toggle          lipgloss.Style
}

func newStyles(p *common.Palette) styles {
	return styles{
		divider:         p.Get("divider"),
		dividerDragging: p.Get("divider dragging"),
		dividerBoundary: p.Get("divider boundary"),
		toggle:          p.Get("toggle"),
	}
}

type Model struct {
	state   *divider.State
	top     Content
	bottom  Content
	control Content

	keyMap        KeyMap
	styles        styles
	toggleSize    int
	nudgeStep     float64
	cancelReverts bool

	width      int
	height     int
	box        layout.Box
	frame      *render.DisplayContext
	dragging   bool
	dragStartY int
}

type Option func(*Model)

func WithKeyMap(km KeyMap) Option {
	return func(m *Model) { m.keyMap = km }
}

func WithPalette(p *common.Palette) Option {
	return func(m *Model) { m.styles = newStyles(p) }
}

// WithToggleSize sets the height of the toggle control in rows.
func WithToggleSize(rows int) Option {
	return func(m *Model) { m.toggleSize = max(rows, 0) }
}

// WithNudgeStep sets how many rows a keyboard nudge moves the divider.
func WithNudgeStep(rows float64) Option {
	return func(m *Model) {
		if rows > 0 {
			m.nudgeStep = rows
		}
	}
}

// WithCancelReverts controls whether a cancelled drag returns the divider to
// where the drag started. Otherwise a cancelled drag is committed like a
// normal release.
func WithCancelReverts(revert bool) Option {
	return func(m *Model) { m.cancelReverts = revert }
}

// New creates a split view over state. A nil control uses the default grip.
func New(state *divider.State, top, bottom, control Content, opts ...Option) *Model {
	m := &Model{
		state:         state,
		top:           top,
		bottom:        bottom,
		control:       control,
		keyMap:        DefaultKeyMap(),
		styles:        newStyles(common.DefaultPalette),
		toggleSize:    1,
		nudgeStep:     1,
		cancelReverts: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.control == nil {
		m.control = Grip(gripWidth, m.styles.divider)
	}
	return m
}

func (m *Model) State() *divider.State {
	return m.state
}

func (m *Model) KeyMap() KeyMap {
	return m.keyMap
}

func (m *Model) Dragging() bool {
	return m.dragging
}

// SetSize records the window size. The divider is re-clamped when the height
// changes.
func (m *Model) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	return m.changed(m.setBox(layout.NewBox(layout.Rect(0, 0, width, height))))
}

func (m *Model) setBox(box layout.Box) bool {
	resized := box.R.Dy() != m.box.R.Dy()
	m.box = box
	if !resized {
		return false
	}
	return m.state.Resize(m.containerHeight())
}

// Layout computes the layout for the most recently rendered geometry.
func (m *Model) Layout() divider.Layout {
	return divider.ComputeLayoutWithToggle(m.state, m.containerHeight(), float64(m.toggleSize))
}

func (m *Model) containerHeight() float64 {
	return float64(max(m.box.R.Dy(), 0))
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height)
	case tea.MouseClickMsg, tea.MouseWheelMsg:
		return m.route(msg.(tea.MouseMsg))
	case tea.MouseMotionMsg:
		if m.dragging {
			return m.OnDragProgress(float64(msg.Mouse().Y - m.dragStartY))
		}
	case tea.MouseReleaseMsg:
		if m.dragging {
			return m.OnDragEnd()
		}
	case DragStartMsg:
		if m.state.Expanded {
			m.dragging = true
			m.dragStartY = msg.Y
		}
	case ToggleMsg:
		return m.Toggle()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case intents.Intent:
		return m.handleIntent(msg)
	}
	return nil
}

// route hit-tests a mouse event against the last frame. Messages that belong
// to the panes are handed back to the host as a command.
func (m *Model) route(msg tea.MouseMsg) tea.Cmd {
	if m.frame == nil {
		return nil
	}
	routed, handled := m.frame.ProcessMouseEvent(msg)
	if !handled || routed == nil {
		return nil
	}
	switch routed.(type) {
	case DragStartMsg, ToggleMsg:
		return m.Update(routed)
	}
	return func() tea.Msg { return routed }
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case m.dragging && key.Matches(msg, m.keyMap.Cancel):
		return m.handleIntent(intents.CancelDrag{})
	case key.Matches(msg, m.keyMap.Toggle):
		return m.handleIntent(intents.ToggleBottom{})
	case key.Matches(msg, m.keyMap.NudgeUp):
		return m.handleIntent(intents.Nudge{Delta: -m.nudgeStep})
	case key.Matches(msg, m.keyMap.NudgeDown):
		return m.handleIntent(intents.Nudge{Delta: m.nudgeStep})
	case key.Matches(msg, m.keyMap.Reset):
		return m.handleIntent(intents.ResetDivider{})
	}
	return nil
}

func (m *Model) handleIntent(intent intents.Intent) tea.Cmd {
	switch intent := intent.(type) {
	case intents.ToggleBottom:
		return m.Toggle()
	case intents.Nudge:
		if !m.state.Expanded || m.dragging {
			return nil
		}
		return m.changed(m.state.Nudge(intent.Delta, m.containerHeight()))
	case intents.ResetDivider:
		if m.dragging {
			return nil
		}
		return m.changed(m.state.Reset(m.containerHeight()))
	case intents.CancelDrag:
		return m.OnDragCancel()
	}
	return nil
}

// OnDragProgress moves the divider deltaY rows away from where the current
// drag started.
func (m *Model) OnDragProgress(deltaY float64) tea.Cmd {
	return m.changed(m.state.ApplyDragDelta(deltaY, m.containerHeight()))
}

// OnDragEnd commits the drag. It must be called once for every drag,
// including drags the input layer aborted.
func (m *Model) OnDragEnd() tea.Cmd {
	m.dragging = false
	m.state.CommitDrag()
	return nil
}

// OnDragCancel ends the drag without a release.
func (m *Model) OnDragCancel() tea.Cmd {
	if !m.dragging {
		return nil
	}
	m.dragging = false
	if !m.cancelReverts {
		m.state.CommitDrag()
		return nil
	}
	return m.changed(m.state.CancelDrag())
}

// Toggle expands or collapses the bottom pane. A drag in progress is
// committed first.
func (m *Model) Toggle() tea.Cmd {
	if m.dragging {
		m.OnDragEnd()
	}
	m.state.ToggleExpanded()
	return m.changed(true)
}

func (m *Model) changed(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	l := m.Layout()
	return func() tea.Msg {
		return LayoutChangedMsg{Layout: l}
	}
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.setBox(box)
	m.frame = dl
	l := m.Layout()

	if !l.Expanded {
		renderContent(m.top, dl, box)
		m.renderToggle(dl, box, l)
		return
	}

	bottomRows := min(max(layout.Cells(l.BottomHeight), 0), box.R.Dy())
	topBox, bottomBox := layout.SplitBottom(box, bottomRows)
	row := layout.CenterRow(box, layout.Cells(l.DividerOffsetY))
	// a divider resting on the pane edge takes the pane's first row
	if !row.Empty() && row.R.Min.Y == bottomBox.R.Min.Y {
		_, bottomBox = bottomBox.CutTop(1)
	}
	renderContent(m.top, dl, topBox)
	renderContent(m.bottom, dl, bottomBox)
	m.renderDivider(dl, row)
	m.renderToggle(dl, box, l)
}

func (m *Model) renderDivider(dl *render.DisplayContext, row layout.Box) {
	if row.Empty() {
		return
	}
	dl.AddFill(row.R, '─', m.styles.divider, render.ZDivider)
	renderContent(m.control, dl, row)
	switch {
	case m.dragging:
		dl.AddHighlight(row.R, m.styles.dividerDragging, render.ZDivider+2)
		dl.AddBold(row.R, render.ZDivider+2)
	case m.state.AtTop || m.state.AtBottom:
		dl.AddHighlight(row.R, m.styles.dividerBoundary, render.ZDivider+2)
	}

	grab, _ := row.CutRight(toggleWidth)
	dl.AddInteraction(grab.R, DragStartMsg{}, render.InteractionDrag, render.ZDivider)
}

func (m *Model) renderToggle(dl *render.DisplayContext, box layout.Box, l divider.Layout) {
	if m.toggleSize == 0 {
		return
	}
	row := layout.RowAt(box, layout.Cells(l.ToggleOffsetY))
	if row.Empty() {
		return
	}
	_, cell := row.CutRight(toggleWidth)
	icon := "▲"
	if l.Expanded {
		icon = "▼"
	}
	content := m.styles.toggle.Render(ansi.Truncate(" "+icon+" ", cell.R.Dx(), ""))
	dl.AddFill(cell.R, ' ', lipgloss.NewStyle(), render.ZToggle)
	dl.AddDraw(cell.R, content, render.ZToggle)
	dl.AddInteraction(cell.R, ToggleMsg{}, render.InteractionClick, render.ZToggle)
}

// View renders the split view on its own at the last known size.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	dl := render.NewDisplayContext()
	m.ViewRect(dl, layout.NewBox(layout.Rect(0, 0, m.width, m.height)))
	return dl.RenderToString(m.width, m.height)
}
