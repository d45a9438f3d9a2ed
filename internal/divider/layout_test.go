package divider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout_Resting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumBottomHeight = 10
	s := MustNew(cfg)

	l := ComputeLayout(s, 1000)
	assert.True(t, l.Expanded)
	assert.Equal(t, 500.0, l.BottomHeight)
	assert.Equal(t, 0.0, l.DividerOffsetY)
	assert.Equal(t, 500.0, l.ToggleOffsetY)
}

func TestComputeLayout_FollowsOffset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumBottomHeight = 10
	s := MustNew(cfg)
	s.ApplyDragDelta(-200, 1000)

	l := ComputeLayout(s, 1000)
	assert.Equal(t, 700.0, l.BottomHeight)
	assert.Equal(t, -200.0, l.DividerOffsetY)
	assert.Equal(t, 300.0, l.ToggleOffsetY)
}

func TestComputeLayout_OffCentrePivot(t *testing.T) {
	cfg := Config{Pivot: 0.25, Range: Range{Lo: 0.1, Hi: 0.9}}
	s := MustNew(cfg)
	s.Expanded = true

	l := ComputeLayout(s, 400)
	assert.Equal(t, 100.0, l.BottomHeight)
	assert.Equal(t, 100.0, l.DividerOffsetY)
}

func TestComputeLayout_BottomHeightFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumBottomHeight = 250
	s := MustNew(cfg)
	s.ApplyDragDelta(300, 1000)
	assert.Less(t, 1000*0.5-s.Current, 250.0)

	l := ComputeLayout(s, 1000)
	assert.Equal(t, 250.0, l.BottomHeight, "pane never shrinks below the minimum")
	assert.Equal(t, 750.0, l.ToggleOffsetY)
}

func TestComputeLayout_FloorForSmallContainers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumBottomHeight = 5
	s := MustNew(cfg)

	for _, h := range []float64{0, 1, 4, 9} {
		s.ApplyDragDelta(1e6, h)
		l := ComputeLayout(s, h)
		assert.Equal(t, 5.0, l.BottomHeight, "height=%v", h)
	}
}

func TestComputeLayout_Collapsed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Expanded = false
	s := MustNew(cfg)
	s.ApplyDragDelta(-100, 1000)

	l := ComputeLayout(s, 1000)
	assert.False(t, l.Expanded)
	assert.Equal(t, 1000.0-ToggleControlSize, l.ToggleOffsetY)
	assert.Zero(t, l.BottomHeight)
	assert.Zero(t, l.DividerOffsetY)
}

func TestComputeLayout_ToggleRecomputesLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinimumBottomHeight = 0
	s := MustNew(cfg)

	expanded := ComputeLayout(s, 200)
	s.ToggleExpanded()
	collapsed := ComputeLayout(s, 200)

	assert.Equal(t, 100.0, expanded.ToggleOffsetY)
	assert.Equal(t, 176.0, collapsed.ToggleOffsetY)
}

func TestComputeLayoutWithToggle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Expanded = false
	s := MustNew(cfg)

	l := ComputeLayoutWithToggle(s, 40, 1)
	assert.Equal(t, 39.0, l.ToggleOffsetY)
}

func TestComputeLayout_Idempotent(t *testing.T) {
	s := MustNew(DefaultConfig())
	s.ApplyDragDelta(37, 640)
	assert.Equal(t, ComputeLayout(s, 640), ComputeLayout(s, 640))
}
