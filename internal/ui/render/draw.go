package render

import (
	"github.com/splitview/splitview/internal/ui/layout"
)

// Z layers used by the split view. Higher layers render later.
const (
	ZBase    = 0
	ZPane    = 10
	ZDivider = 20
	ZToggle  = 30
	ZFlash   = 40
)

// Draw represents a content rendering operation. Draws and effects share one
// ordering: lower Z first, then insertion order.
type Draw struct {
	Rect    layout.Rectangle // The area to draw in
	Content string           // Rendered ANSI string (from lipgloss, etc.)
	Z       int
}
