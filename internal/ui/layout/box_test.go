package layout

import (
	"testing"
)

func TestBox_V_FixedAndFill(t *testing.T) {
	box := NewBox(Rect(0, 0, 100, 100))

	boxes := box.V(Fixed(30), Fill(1))

	if len(boxes) != 2 {
		t.Fatalf("len(boxes) = %d, want 2", len(boxes))
	}
	if boxes[0].R.Dy() != 30 {
		t.Errorf("top height = %d, want 30", boxes[0].R.Dy())
	}
	if boxes[1].R.Min.Y != 30 || boxes[1].R.Dy() != 70 {
		t.Errorf("bottom = [%d, +%d], want [30, +70]", boxes[1].R.Min.Y, boxes[1].R.Dy())
	}
}

func TestBox_V_OffsetBox(t *testing.T) {
	box := NewBox(Rect(10, 20, 100, 80)) // offset box

	boxes := box.V(Fixed(56), Fill(1))

	// 80 height, 56 fixed, rest = 24
	if boxes[0].R.Dy() != 56 {
		t.Errorf("top height = %d, want 56", boxes[0].R.Dy())
	}
	if boxes[1].R.Dy() != 24 {
		t.Errorf("bottom height = %d, want 24", boxes[1].R.Dy())
	}
	if boxes[0].R.Min.X != 10 || boxes[0].R.Max.X != 110 {
		t.Errorf("top X range = [%d, %d], want [10, 110]", boxes[0].R.Min.X, boxes[0].R.Max.X)
	}
	if boxes[1].R.Min.Y != 76 {
		t.Errorf("bottom starts at Y=%d, want 76", boxes[1].R.Min.Y)
	}
}

func TestBox_H_FillWeights(t *testing.T) {
	box := NewBox(Rect(0, 0, 10, 1))

	boxes := box.H(Fill(1), Fill(2))

	if boxes[0].R.Dx()+boxes[1].R.Dx() != 10 {
		t.Errorf("widths %d+%d do not add up to 10", boxes[0].R.Dx(), boxes[1].R.Dx())
	}
	if boxes[0].R.Dx() != 3 {
		t.Errorf("first width = %d, want 3", boxes[0].R.Dx())
	}
	if boxes[1].R.Min.X != 3 {
		t.Errorf("second starts at X=%d, want 3", boxes[1].R.Min.X)
	}
}

func TestBox_V_FixedLargerThanBox(t *testing.T) {
	box := NewBox(Rect(0, 0, 10, 5))

	boxes := box.V(Fixed(8), Fixed(8))

	if boxes[0].R.Dy() != 5 {
		t.Errorf("first height = %d, want 5", boxes[0].R.Dy())
	}
	if boxes[1].R.Dy() != 0 {
		t.Errorf("second height = %d, want 0", boxes[1].R.Dy())
	}
}

func TestBox_Center(t *testing.T) {
	box := NewBox(Rect(0, 0, 20, 10))

	c := box.Center(4, 2)

	if c.R.Min.X != 8 || c.R.Min.Y != 4 {
		t.Errorf("center origin = (%d, %d), want (8, 4)", c.R.Min.X, c.R.Min.Y)
	}
	if c.R.Dx() != 4 || c.R.Dy() != 2 {
		t.Errorf("center size = %dx%d, want 4x2", c.R.Dx(), c.R.Dy())
	}

	big := box.Center(50, 50)
	if big.R != box.R {
		t.Errorf("oversized center = %v, want %v", big.R, box.R)
	}
}

func TestBox_CutBottom(t *testing.T) {
	box := NewBox(Rect(0, 0, 20, 10))

	rest, bottom := box.CutBottom(3)

	if rest.R.Dy() != 7 || bottom.R.Dy() != 3 {
		t.Errorf("heights = %d/%d, want 7/3", rest.R.Dy(), bottom.R.Dy())
	}
	if bottom.R.Min.Y != 7 {
		t.Errorf("bottom starts at Y=%d, want 7", bottom.R.Min.Y)
	}
}

func TestBox_CutRight(t *testing.T) {
	box := NewBox(Rect(0, 0, 20, 10))

	rest, right := box.CutRight(4)

	if rest.R.Dx() != 16 || right.R.Min.X != 16 {
		t.Errorf("rest width = %d, right X = %d, want 16/16", rest.R.Dx(), right.R.Min.X)
	}
}
