// Package layout provides cell geometry for immediate-mode rendering.
package layout

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Rectangle is an area of terminal cells. Max is exclusive.
type Rectangle = uv.Rectangle

// Rect creates a rectangle from its origin and size.
func Rect(x, y, width, height int) Rectangle {
	return uv.Rect(x, y, width, height)
}

// Box is a rectangle that can be subdivided.
type Box struct {
	R Rectangle
}

// NewBox wraps r.
func NewBox(r Rectangle) Box {
	return Box{R: r}
}

type specKind int

const (
	specFixed specKind = iota
	specFill
)

// Spec describes how much of a dimension a child takes.
type Spec struct {
	kind  specKind
	value float64
}

// Fixed takes exactly n cells, or whatever is left if less.
func Fixed(n int) Spec {
	return Spec{kind: specFixed, value: float64(n)}
}

// Fill shares the space left after fixed children, by weight.
func Fill(weight float64) Spec {
	return Spec{kind: specFill, value: weight}
}

// V splits the box into rows, top to bottom.
func (b Box) V(specs ...Spec) []Box {
	sizes := distribute(b.R.Dy(), specs)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = NewBox(Rect(b.R.Min.X, y, b.R.Dx(), size))
		y += size
	}
	return boxes
}

// H splits the box into columns, left to right.
func (b Box) H(specs ...Spec) []Box {
	sizes := distribute(b.R.Dx(), specs)
	boxes := make([]Box, len(sizes))
	x := b.R.Min.X
	for i, size := range sizes {
		boxes[i] = NewBox(Rect(x, b.R.Min.Y, size, b.R.Dy()))
		x += size
	}
	return boxes
}

// Center returns a box of the given size centred in b, shrunk to fit.
func (b Box) Center(width, height int) Box {
	width = min(max(width, 0), b.R.Dx())
	height = min(max(height, 0), b.R.Dy())
	x := b.R.Min.X + (b.R.Dx()-width)/2
	y := b.R.Min.Y + (b.R.Dy()-height)/2
	return NewBox(Rect(x, y, width, height))
}

// CutTop splits off the first n rows.
func (b Box) CutTop(n int) (top, rest Box) {
	n = min(max(n, 0), b.R.Dy())
	boxes := b.V(Fixed(n), Fill(1))
	return boxes[0], boxes[1]
}

// CutBottom splits off the last n rows.
func (b Box) CutBottom(n int) (rest, bottom Box) {
	n = min(max(n, 0), b.R.Dy())
	boxes := b.V(Fill(1), Fixed(n))
	return boxes[0], boxes[1]
}

// CutRight splits off the last n columns.
func (b Box) CutRight(n int) (rest, right Box) {
	n = min(max(n, 0), b.R.Dx())
	boxes := b.H(Fill(1), Fixed(n))
	return boxes[0], boxes[1]
}

// Empty reports whether the box has no cells.
func (b Box) Empty() bool {
	return b.R.Dx() <= 0 || b.R.Dy() <= 0
}

func distribute(total int, specs []Spec) []int {
	sizes := make([]int, len(specs))
	remaining := max(total, 0)
	var weights float64
	for i, spec := range specs {
		switch spec.kind {
		case specFixed:
			sizes[i] = min(int(spec.value), remaining)
		case specFill:
			weights += spec.value
			continue
		}
		sizes[i] = max(sizes[i], 0)
		remaining -= sizes[i]
	}
	if weights <= 0 {
		return sizes
	}

	left := remaining
	last := -1
	for i, spec := range specs {
		if spec.kind != specFill {
			continue
		}
		sizes[i] = int(float64(remaining) * spec.value / weights)
		left -= sizes[i]
		last = i
	}
	// rounding leftovers go to the last fill
	sizes[last] += left
	return sizes
}
