package test

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/splitview/splitview/internal/ui/layout"
	"github.com/splitview/splitview/internal/ui/render"
)

// RenderImmediate renders an immediate model into a fixed-size buffer.
func RenderImmediate(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) string {
	dl := render.NewDisplayContext()
	box := layout.NewBox(layout.Rect(0, 0, width, height))
	model.ViewRect(dl, box)
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// Box returns a layout box at the given position.
func Box(x, y, width, height int) layout.Box {
	return layout.NewBox(layout.Rect(x, y, width, height))
}

// RenderLines renders like RenderImmediate and splits the result into rows.
func RenderLines(model interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}, width, height int) []string {
	out := RenderImmediate(model, width, height)
	lines := make([]string, 0, height)
	start := 0
	for i := 0; i < len(out); i++ {
		if out[i] == '\n' {
			lines = append(lines, trimCR(out[start:i]))
			start = i + 1
		}
	}
	lines = append(lines, trimCR(out[start:]))
	return lines
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}
