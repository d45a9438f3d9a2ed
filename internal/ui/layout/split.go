package layout

import "math"

// Cells rounds a length to whole terminal cells, half away from zero.
func Cells(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// SplitBottom divides the box into a top area and a bottom area of
// bottomHeight rows. The bottom area is clamped to the box, so the top area
// may be empty.
func SplitBottom(box Box, bottomHeight int) (top, bottom Box) {
	return box.CutBottom(bottomHeight)
}

// RowAt returns the single row of box at offset y from its top, clamped to
// the box. It returns an empty box when the box has no rows.
func RowAt(box Box, y int) Box {
	if box.R.Dy() <= 0 {
		return NewBox(Rect(box.R.Min.X, box.R.Min.Y, box.R.Dx(), 0))
	}
	y = min(max(y, 0), box.R.Dy()-1)
	return NewBox(Rect(box.R.Min.X, box.R.Min.Y+y, box.R.Dx(), 1))
}

// CenterRow returns the row that sits offset rows away from the vertical
// centre of box.
func CenterRow(box Box, offset int) Box {
	return RowAt(box, box.R.Dy()/2+offset)
}
