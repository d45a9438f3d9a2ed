package render

import (
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/splitview/splitview/internal/ui/layout"
)

// DisplayContext holds all rendering operations for a frame.
// Operations are accumulated during the layout pass, then executed by Z-index
// and insertion order.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	interactions []interactionOp
	orderCounter int
}

// NewDisplayContext creates a new empty display context.
func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:        make([]drawOp, 0, 8),
		effects:      make([]effectOp, 0, 4),
		interactions: make([]interactionOp, 0, 2),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.orderCounter++
	return dl.orderCounter
}

// AddDraw adds a Draw to the display context.
func (dl *DisplayContext) AddDraw(rect layout.Rectangle, content string, z int) {
	dl.draws = append(dl.draws, drawOp{
		Draw: Draw{
			Rect:    rect,
			Content: content,
			Z:       z,
		},
		order: dl.nextOrder(),
	})
}

// AddFill fills a rectangle with the provided rune and style.
func (dl *DisplayContext) AddFill(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dl.AddEffect(FillEffect{
		Rect:  rect,
		Char:  ch,
		Style: cellStyle(style),
		Z:     z,
	})
}

// AddEffect adds a custom Effect to the display context.
func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{
		effect: effect,
		order:  dl.nextOrder(),
		z:      effect.GetZ(),
	})
}

// AddBold emboldens the cells of rect.
func (dl *DisplayContext) AddBold(rect layout.Rectangle, z int) {
	dl.AddEffect(OverlayEffect{Rect: rect, Style: uv.Style{Attrs: uv.AttrBold}, Z: z})
}

// AddHighlight tints the cells of rect with the colors and attributes of
// style, keeping their content.
func (dl *DisplayContext) AddHighlight(rect layout.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(OverlayEffect{Rect: rect, Style: cellStyle(style), Z: z})
}

// AddInteraction registers an interactive region.
func (dl *DisplayContext) AddInteraction(rect layout.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dl.interactions = append(dl.interactions, interactionOp{
		InteractionOp: InteractionOp{
			Rect: rect,
			Msg:  msg,
			Type: typ,
			Z:    z,
		},
		order: dl.nextOrder(),
	})
}

// Render executes draws and effects against the screen, ordered by Z-index and
// then by insertion order.
func (dl *DisplayContext) Render(buf uv.Screen) {
	if len(dl.draws) == 0 && len(dl.effects) == 0 {
		return
	}

	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{z: op.Z, order: op.order, draw: op.Draw, isDraw: true})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{z: op.z, order: op.order, effect: op.effect})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			uv.NewStyledString(op.draw.Content).Draw(buf, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

// RenderToString renders to a new buffer of the given size and returns the
// final string output.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// InteractionsList returns all interactions, highest Z first.
func (dl *DisplayContext) InteractionsList() []InteractionOp {
	sorted := dl.sortedInteractions()
	result := make([]InteractionOp, len(sorted))
	for i, op := range sorted {
		result[i] = op.InteractionOp
	}
	return result
}

// ProcessMouseEvent routes a mouse press or wheel event through the registered
// interactions.
// It returns the message of the region that was hit.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	return processMouseEvent(dl.sortedInteractions(), msg)
}

func (dl *DisplayContext) sortedInteractions() []interactionOp {
	sorted := make([]interactionOp, len(dl.interactions))
	copy(sorted, dl.interactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		return sorted[i].order < sorted[j].order
	})
	return sorted
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
	z      int
}

type interactionOp struct {
	InteractionOp
	order int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}
