package splitview

import (
	"charm.land/lipgloss/v2"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

// Content is anything the split view can place in one of its regions.
type Content interface {
	Render(dl *render.DisplayContext, box layout.Box)
}

// ContentFunc adapts a function to Content.
type ContentFunc func(dl *render.DisplayContext, box layout.Box)

func (f ContentFunc) Render(dl *render.DisplayContext, box layout.Box) {
	f(dl, box)
}

// Text renders static text clipped to its box.
func Text(s string) Content {
	return ContentFunc(func(dl *render.DisplayContext, box layout.Box) {
		if box.Empty() {
			return
		}
		dl.AddDraw(box.R, s, render.ZPane)
	})
}

// Grip is the default divider control: a short handle centred on the
// divider row.
func Grip(width int, style lipgloss.Style) Content {
	return ContentFunc(func(dl *render.DisplayContext, box layout.Box) {
		if box.Empty() {
			return
		}
		w := min(width, box.R.Dx())
		handle := box.Center(w, 1)
		dl.AddFill(handle.R, '━', style, render.ZDivider+1)
	})
}

func renderContent(c Content, dl *render.DisplayContext, box layout.Box) {
	if c == nil || box.Empty() {
		return
	}
	c.Render(dl, box)
}
