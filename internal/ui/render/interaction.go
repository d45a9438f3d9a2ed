package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/splitview/splitview/internal/ui/layout"
)

// InteractionType defines what kinds of input an interactive region responds to.
// Multiple types can be combined using bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
	InteractionDrag
)

// InteractionOp represents an interactive region that responds to input.
type InteractionOp struct {
	Rect layout.Rectangle // absolute coordinates
	Msg  tea.Msg          // sent when the region is hit
	Type InteractionType
	Z    int // higher wins when regions overlap
}

// ScrollDeltaCarrier is implemented by messages that need the wheel delta in
// rows. Negative values scroll up.
type ScrollDeltaCarrier interface {
	SetDelta(delta int) tea.Msg
}

// DragStartCarrier is implemented by messages that need the press position of
// a drag.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

func contains(r layout.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

const wheelStep = 3

// processMouseEvent expects interactions sorted by priority. Drag regions win
// over click regions at the same point.
func processMouseEvent(interactions []interactionOp, msg tea.MouseMsg) (tea.Msg, bool) {
	mouse := msg.Mouse()
	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return nil, false
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionDrag == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			if carrier, ok := interaction.Msg.(DragStartCarrier); ok {
				return carrier.SetDragStart(mouse.X, mouse.Y), true
			}
			return interaction.Msg, true
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionClick == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			return interaction.Msg, true
		}
	case tea.MouseWheelMsg:
		delta := 0
		switch mouse.Button {
		case tea.MouseWheelUp:
			delta = -wheelStep
		case tea.MouseWheelDown:
			delta = wheelStep
		default:
			return nil, false
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionScroll == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
				continue
			}
			if carrier, ok := interaction.Msg.(ScrollDeltaCarrier); ok {
				return carrier.SetDelta(delta), true
			}
			return interaction.Msg, true
		}
	}
	return nil, false
}
