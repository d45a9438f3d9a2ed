package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/splitview/splitview/internal/ui/layout"
)

// Effect post-processes cells that earlier operations drew.
type Effect interface {
	Apply(buf uv.Screen)
	GetZ() int
	GetRect() layout.Rectangle
}

// OverlayEffect merges Style into every drawn cell of Rect. Colors replace
// the cell's own colors when set; attributes are added.
type OverlayEffect struct {
	Rect  layout.Rectangle
	Style uv.Style
	Z     int
}

func (e OverlayEffect) Apply(buf uv.Screen) {
	area := e.Rect.Intersect(buf.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; {
			cell := buf.CellAt(x, y)
			// wide graphemes leave zero-width placeholders behind the lead cell
			if cell == nil || cell.Width == 0 {
				x++
				continue
			}
			next := cell.Clone()
			if e.Style.Fg != nil {
				next.Style.Fg = e.Style.Fg
			}
			if e.Style.Bg != nil {
				next.Style.Bg = e.Style.Bg
			}
			if e.Style.Underline != uv.UnderlineNone {
				next.Style.Underline = e.Style.Underline
			}
			next.Style.Attrs |= e.Style.Attrs
			buf.SetCell(x, y, next)
			x += max(cell.Width, 1)
		}
	}
}

func (e OverlayEffect) GetZ() int                 { return e.Z }
func (e OverlayEffect) GetRect() layout.Rectangle { return e.Rect }

// FillEffect overwrites every cell of Rect with Char.
type FillEffect struct {
	Rect  layout.Rectangle
	Char  rune
	Style uv.Style
	Z     int
}

func (e FillEffect) Apply(buf uv.Screen) {
	cell := &uv.Cell{
		Content: string(e.Char),
		Width:   1,
		Style:   e.Style,
	}
	area := buf.Bounds().Intersect(e.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			buf.SetCell(x, y, cell)
		}
	}
}

func (e FillEffect) GetZ() int                 { return e.Z }
func (e FillEffect) GetRect() layout.Rectangle { return e.Rect }

// cellColor keeps palette colors as palette escapes instead of widening them
// to 24-bit RGB.
func cellColor(c color.Color) ansi.Color {
	if c == nil {
		return nil
	}
	if _, none := c.(lipgloss.NoColor); none {
		return nil
	}
	if ac, ok := c.(ansi.Color); ok {
		return ac
	}
	return nil
}

func cellStyle(ls lipgloss.Style) uv.Style {
	cs := uv.Style{
		Fg: cellColor(ls.GetForeground()),
		Bg: cellColor(ls.GetBackground()),
	}
	attrs := []struct {
		on   bool
		attr uint8
	}{
		{ls.GetBold(), uv.AttrBold},
		{ls.GetFaint(), uv.AttrFaint},
		{ls.GetItalic(), uv.AttrItalic},
		{ls.GetStrikethrough(), uv.AttrStrikethrough},
		{ls.GetReverse(), uv.AttrReverse},
	}
	for _, a := range attrs {
		if a.on {
			cs.Attrs |= a.attr
		}
	}
	if ls.GetUnderline() {
		cs.Underline = uv.UnderlineSingle
	}
	return cs
}
